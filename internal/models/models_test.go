package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount_Valid(t *testing.T) {
	a, err := NewAccount("id-1", "Alice", "alice@example.com", "secret", RoleUser)
	require.NoError(t, err)
	assert.Equal(t, "id-1", a.ID)
	assert.Equal(t, RoleUser, a.Role)
	assert.False(t, a.CreatedAt.IsZero())
}

func TestNewAccount_RejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name            string
		id, accName     string
		email, password string
		role            Role
	}{
		{"empty id", "", "Alice", "a@b.c", "pw", RoleUser},
		{"empty name", "id", "", "a@b.c", "pw", RoleUser},
		{"empty email", "id", "Alice", "", "pw", RoleUser},
		{"bad role", "id", "Alice", "a@b.c", "pw", Role("staff")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewAccount(tc.id, tc.accName, tc.email, tc.password, tc.role)
			require.Error(t, err)
		})
	}
}

func TestSessionProjection_ExcludesPassword(t *testing.T) {
	a, err := NewAccount("id-1", "Alice", "alice@example.com", "secret", RoleAdmin)
	require.NoError(t, err)

	s := a.Session()
	b, err := json.Marshal(s)
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":"id-1","name":"Alice","email":"alice@example.com","role":"admin"}`, string(b))
	assert.NotContains(t, string(b), "secret")
}

func TestAccountJSONFieldNames(t *testing.T) {
	a, err := NewAccount("id-1", "Alice", "alice@example.com", "secret", RoleUser)
	require.NoError(t, err)

	b, err := json.Marshal(a)
	require.NoError(t, err)

	for _, field := range []string{`"id"`, `"name"`, `"email"`, `"passwordHash"`, `"role"`, `"createdAt"`} {
		assert.Contains(t, string(b), field)
	}
}

func TestCartItemFromProduct(t *testing.T) {
	p := Product{ID: 7, Name: "Yoga Mat", Price: 29.99, Image: "mat.jpg"}
	item := CartItemFromProduct(p, 3)

	assert.Equal(t, int64(7), item.ProductID)
	assert.Equal(t, "Yoga Mat", item.Name)
	assert.Equal(t, 29.99, item.Price)
	assert.Equal(t, 3, item.Quantity)
}

func TestBucketKey(t *testing.T) {
	assert.Equal(t, "guest", BucketKey(""))
	assert.Equal(t, "user-1", BucketKey("user-1"))
}

func TestStorageKeys(t *testing.T) {
	assert.Equal(t, "cart:guest", CartKey(BucketKey("")))
	assert.Equal(t, "cart:user-1", CartKey("user-1"))
	assert.Equal(t, "wishlist:guest", WishlistKey("guest"))
	assert.Equal(t, "wishlist:user-1", WishlistKey("user-1"))
}
