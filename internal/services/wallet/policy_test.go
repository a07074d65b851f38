package wallet

import (
	"context"
	"testing"

	"custodia/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestEnsureCanAccess(t *testing.T) {
	policy := AccessPolicy{}
	owned := &models.Wallet{ID: 1, CustomerID: 10}

	tests := []struct {
		name    string
		actor   models.Actor
		wantErr error
	}{
		{"owner may access", models.Actor{CustomerID: 10, Role: models.RoleCustomer}, nil},
		{"other customer may not", models.Actor{CustomerID: 20, Role: models.RoleCustomer}, ErrUnauthorized},
		{"employee may access any wallet", models.Actor{CustomerID: 99, Role: models.RoleEmployee}, nil},
		{"unknown role is rejected", models.Actor{CustomerID: 10, Role: "AUDITOR"}, ErrUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.EnsureCanAccess(tt.actor, owned)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCanViewAll(t *testing.T) {
	policy := AccessPolicy{}
	assert.True(t, policy.CanViewAll(models.Actor{CustomerID: 99, Role: models.RoleEmployee}))
	assert.False(t, policy.CanViewAll(models.Actor{CustomerID: 10, Role: models.RoleCustomer}))
	assert.False(t, policy.CanViewAll(models.Actor{CustomerID: 10}))
}

func TestActorFromContext(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		ctx := WithActor(context.Background(), models.Actor{CustomerID: 10, Role: models.RoleCustomer})
		actor, err := ActorFromContext(ctx)
		assert.NoError(t, err)
		assert.Equal(t, uint(10), actor.CustomerID)
	})

	t.Run("missing actor", func(t *testing.T) {
		_, err := ActorFromContext(context.Background())
		assert.ErrorIs(t, err, ErrNoActor)
	})

	t.Run("zero customer id is no actor", func(t *testing.T) {
		ctx := WithActor(context.Background(), models.Actor{Role: models.RoleCustomer})
		_, err := ActorFromContext(ctx)
		assert.ErrorIs(t, err, ErrNoActor)
	})
}
