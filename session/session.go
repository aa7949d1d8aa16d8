// Package session holds the customer-facing per-session state: cart,
// wishlist, and the dining context stamped by a QR scan. The state is an
// explicit object passed through handlers, persisted through a pluggable
// Store behind a JSON codec, never a process-wide singleton.
package session

import (
	"encoding/base64"
	"encoding/json"
)

type CartItem struct {
	ProductID uint    `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

type State struct {
	Cart      []CartItem `json:"cart"`
	Wishlist  []uint     `json:"wishlist"`
	StoreSlug string     `json:"storeSlug,omitempty"`
	HallID    uint       `json:"hallId,omitempty"`
	TableID   uint       `json:"tableId,omitempty"`
}

// AddItem merges by product id, incrementing the quantity for repeats.
func (s *State) AddItem(item CartItem, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range s.Cart {
		if s.Cart[i].ProductID == item.ProductID {
			s.Cart[i].Quantity += quantity
			return
		}
	}
	item.Quantity = quantity
	s.Cart = append(s.Cart, item)
}

func (s *State) RemoveItem(productID uint) {
	kept := s.Cart[:0]
	for _, it := range s.Cart {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	s.Cart = kept
}

// ToggleWishlist reports whether the product is wishlisted afterwards.
func (s *State) ToggleWishlist(productID uint) bool {
	for i, id := range s.Wishlist {
		if id == productID {
			s.Wishlist = append(s.Wishlist[:i], s.Wishlist[i+1:]...)
			return false
		}
	}
	s.Wishlist = append(s.Wishlist, productID)
	return true
}

func (s *State) SetDiningContext(storeSlug string, hallID, tableID uint) {
	s.StoreSlug = storeSlug
	s.HallID = hallID
	s.TableID = tableID
}

func (s *State) ResetContext() {
	s.StoreSlug = ""
	s.HallID = 0
	s.TableID = 0
}

// Total is the cart sum in the store's currency.
func (s *State) Total() float64 {
	var total float64
	for _, it := range s.Cart {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// Encode serializes the state to a cookie-safe string.
func (s *State) Encode() (string, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// Decode is the inverse of Encode. An empty input yields a fresh state.
func Decode(encoded string) (*State, error) {
	if encoded == "" {
		return &State{}, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}
	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, err
	}
	return &st, nil
}
