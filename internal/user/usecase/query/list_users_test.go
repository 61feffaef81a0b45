package query

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/stockdesk/internal/user/domain"
	"github.com/tair/stockdesk/internal/user/repository"
)

func TestListUsers(t *testing.T) {
	handler := NewListUsersHandler(repository.NewSeededCredentialRepository())

	t.Run("admin sees the credential table", func(t *testing.T) {
		acting := &domain.Session{ID: uuid.New(), Username: "admin", Role: domain.RoleAdmin, LoginAt: time.Now()}
		users, err := handler.Handle(ListUsersQuery{Acting: acting})
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "admin", users[0].Username)
		assert.True(t, users[0].Protected)
	})

	t.Run("non-admin is denied", func(t *testing.T) {
		acting := &domain.Session{ID: uuid.New(), Username: "staff", Role: domain.RoleUser, LoginAt: time.Now()}
		_, err := handler.Handle(ListUsersQuery{Acting: acting})
		assert.True(t, errors.Is(err, domain.ErrAccessDenied))
	})
}
