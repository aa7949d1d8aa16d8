package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddItemMergesByProduct(t *testing.T) {
	state := &State{}
	state.AddItem(CartItem{ProductID: 1, Name: "Margherita", Price: 25}, 2)
	state.AddItem(CartItem{ProductID: 2, Name: "Pepperoni", Price: 30}, 1)
	state.AddItem(CartItem{ProductID: 1, Name: "Margherita", Price: 25}, 1)

	assert.Len(t, state.Cart, 2)
	assert.Equal(t, 3, state.Cart[0].Quantity)
	assert.Equal(t, 105.0, state.Total())
}

func TestAddItemClampsQuantity(t *testing.T) {
	state := &State{}
	state.AddItem(CartItem{ProductID: 1, Price: 10}, 0)
	state.AddItem(CartItem{ProductID: 2, Price: 10}, -5)

	assert.Equal(t, 1, state.Cart[0].Quantity)
	assert.Equal(t, 1, state.Cart[1].Quantity)
}

func TestRemoveItem(t *testing.T) {
	state := &State{}
	state.AddItem(CartItem{ProductID: 1, Price: 25}, 1)
	state.AddItem(CartItem{ProductID: 2, Price: 30}, 1)

	state.RemoveItem(1)
	assert.Len(t, state.Cart, 1)
	assert.Equal(t, uint(2), state.Cart[0].ProductID)

	// removing an absent id is a no-op
	state.RemoveItem(99)
	assert.Len(t, state.Cart, 1)
}

func TestToggleWishlist(t *testing.T) {
	state := &State{}
	assert.True(t, state.ToggleWishlist(7))
	assert.True(t, state.ToggleWishlist(8))
	assert.False(t, state.ToggleWishlist(7))
	assert.Equal(t, []uint{8}, state.Wishlist)
}

func TestDiningContextLifecycle(t *testing.T) {
	state := &State{}
	state.SetDiningContext("nawab-dubai", 3, 17)
	assert.Equal(t, "nawab-dubai", state.StoreSlug)
	assert.Equal(t, uint(3), state.HallID)
	assert.Equal(t, uint(17), state.TableID)

	state.ResetContext()
	assert.Empty(t, state.StoreSlug)
	assert.Zero(t, state.HallID)
	assert.Zero(t, state.TableID)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	state := &State{}
	state.AddItem(CartItem{ProductID: 1, Name: "Margherita", Price: 25, Image: "http://x/m.png"}, 2)
	state.ToggleWishlist(9)
	state.SetDiningContext("nawab-dubai", 3, 17)

	encoded, err := state.Encode()
	assert.NoError(t, err)

	decoded, err := Decode(encoded)
	assert.NoError(t, err)
	assert.Equal(t, state, decoded)
}

func TestDecodeEmptyAndGarbage(t *testing.T) {
	state, err := Decode("")
	assert.NoError(t, err)
	assert.Empty(t, state.Cart)

	_, err = Decode("!!definitely not base64!!")
	assert.Error(t, err)
}

func TestMemoryStoreIsolatesSessions(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	alice, err := store.Load(ctx, "alice")
	assert.NoError(t, err)
	alice.AddItem(CartItem{ProductID: 1, Price: 25}, 1)
	assert.NoError(t, store.Save(ctx, "alice", alice))

	bob, err := store.Load(ctx, "bob")
	assert.NoError(t, err)
	assert.Empty(t, bob.Cart)

	again, err := store.Load(ctx, "alice")
	assert.NoError(t, err)
	assert.Len(t, again.Cart, 1)
	assert.Equal(t, 25.0, again.Total())
}
