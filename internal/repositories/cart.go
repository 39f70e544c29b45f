package repositories

import (
	"sync"

	"github.com/google/uuid"

	"tour-booking-platform/internal/models"
)

// sessionCart is one session's cart. Each cart carries its own mutex so that
// operations on the same session serialize (the add path is read-merge-write)
// while different sessions never block one another.
type sessionCart struct {
	mu    sync.Mutex
	items map[string]*models.CartItem
	order []string
}

func newSessionCart() *sessionCart {
	return &sessionCart{items: make(map[string]*models.CartItem)}
}

// CartRepository holds per-session shopping carts in memory. All operations
// are scoped by the caller's session id; a session can never observe another
// session's items.
type CartRepository struct {
	mu    sync.RWMutex
	carts map[string]*sessionCart
}

// NewCartRepository creates an empty cart repository
func NewCartRepository() *CartRepository {
	return &CartRepository{carts: make(map[string]*sessionCart)}
}

func (r *CartRepository) cart(sessionID string) (*sessionCart, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.carts[sessionID]
	return c, ok
}

func (r *CartRepository) cartOrCreate(sessionID string) *sessionCart {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.carts[sessionID]
	if !ok {
		c = newSessionCart()
		r.carts[sessionID] = c
	}
	return c
}

// Items returns the session's cart items in insertion order. A session with
// no cart yet yields an empty slice.
func (r *CartRepository) Items(sessionID string) []*models.CartItem {
	c, ok := r.cart(sessionID)
	if !ok {
		return []*models.CartItem{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]*models.CartItem, 0, len(c.order))
	for _, id := range c.order {
		item := *c.items[id]
		result = append(result, &item)
	}
	return result
}

// Add adds an item to the session's cart. When the cart already holds an item
// for the same experience, that item's quantity is incremented and no new id
// is minted.
func (r *CartRepository) Add(sessionID string, req *models.CartItemCreateRequest) (*models.CartItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	quantity := req.NormalizedQuantity()

	c := r.cartOrCreate(sessionID)
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, id := range c.order {
		existing := c.items[id]
		if existing.ExperienceID == req.ExperienceID {
			existing.Quantity += quantity
			item := *existing
			return &item, nil
		}
	}

	item := &models.CartItem{
		ID:           uuid.New().String(),
		ExperienceID: req.ExperienceID,
		Title:        req.Title,
		Price:        req.Price,
		ImageURL:     req.ImageURL,
		Type:         req.Type,
		Quantity:     quantity,
	}
	c.items[item.ID] = item
	c.order = append(c.order, item.ID)

	result := *item
	return &result, nil
}

// UpdateQuantity sets the quantity of a cart item. Quantities below 1 are
// rejected and leave the stored item unchanged.
func (r *CartRepository) UpdateQuantity(sessionID, itemID string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, models.ErrInvalidInput
	}

	c, ok := r.cart(sessionID)
	if !ok {
		return nil, models.ErrCartItemNotFound
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[itemID]
	if !ok {
		return nil, models.ErrCartItemNotFound
	}
	item.Quantity = quantity

	result := *item
	return &result, nil
}

// Remove deletes a cart item, reporting whether anything was removed
func (r *CartRepository) Remove(sessionID, itemID string) bool {
	c, ok := r.cart(sessionID)
	if !ok {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[itemID]; !ok {
		return false
	}
	delete(c.items, itemID)
	for i, id := range c.order {
		if id == itemID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// Clear discards the session's cart entirely. Clearing a session that has no
// cart is a no-op; a later Add lazily recreates an empty cart.
func (r *CartRepository) Clear(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
}
