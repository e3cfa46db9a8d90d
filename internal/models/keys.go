package models

// Persisted key layout. Cart and wishlist state is namespaced per bucket --
// "guest" while nobody is logged in, the account id otherwise.
const (
	KeyAccounts = "accounts"
	KeySession  = "session"
	KeyOrders   = "orders"

	GuestBucket = "guest"
)

// BucketKey derives the storage bucket for the given account id. An empty id
// means no session is active.
func BucketKey(accountID string) string {
	if accountID == "" {
		return GuestBucket
	}
	return accountID
}

// CartKey returns the cart storage key for a bucket.
func CartKey(bucket string) string {
	return "cart:" + bucket
}

// WishlistKey returns the wishlist storage key for a bucket.
func WishlistKey(bucket string) string {
	return "wishlist:" + bucket
}
