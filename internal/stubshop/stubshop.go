// Package stubshop serves a local lookalike of the target storefront,
// exposing the exact selector and message contract the suite depends on.
// It lets the whole engine run hermetically when no live base URL is
// configured. State is in-memory and scoped to one run.
package stubshop

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// Options configures storefront behaviors the scenarios need to vary.
type Options struct {
	// GuestGate controls whether anonymous checkouts pass through the
	// optional checkout-as-guest page.
	GuestGate bool
	// Email and Password are the registered-customer credentials.
	Email    string
	Password string
	// MaxQuantity is the upper bound the cart silently clamps to.
	MaxQuantity int
}

// DefaultOptions returns the storefront configuration the suite's
// fixtures assume.
func DefaultOptions() Options {
	return Options{
		GuestGate:   true,
		Email:       "jim_finch@gmail.com",
		Password:    "qwerty",
		MaxQuantity: 10000,
	}
}

// Product is one catalog entry.
type Product struct {
	ID    string
	Name  string
	Price float64
}

// PriceText renders the price the way the storefront displays it,
// including a group separator above 999.
func (p Product) PriceText() string {
	if p.Price >= 1000 {
		thousands := int(p.Price) / 1000
		rest := p.Price - float64(thousands*1000)
		return fmt.Sprintf("$%d,%06.2f", thousands, rest)
	}
	return fmt.Sprintf("$%.2f", p.Price)
}

// Category is one catalog category, possibly with sub-category tabs
// instead of products.
type Category struct {
	Slug     string
	Label    string
	Products []Product
	Tabs     []string
}

// catalog is the fixed product catalog. Default listing order within each
// category is deliberately not price order.
var catalog = []Category{
	{
		Slug:  "books",
		Label: "Books",
		Products: []Product{
			{ID: "fiction", Name: "Fiction", Price: 10.00},
			{ID: "health-book", Name: "Health Book", Price: 5.50},
			{ID: "science-book", Name: "Science Book", Price: 20.00},
		},
	},
	{
		Slug:  "apparel-shoes",
		Label: "Apparel & Shoes",
		Products: []Product{
			{ID: "blue-jeans", Name: "Blue Jeans", Price: 35.00},
			{ID: "casual-shirt", Name: "Casual Shirt", Price: 19.90},
		},
	},
	{
		Slug:  "jewelry",
		Label: "Jewelry",
		Products: []Product{
			{ID: "gold-necklace", Name: "Gold Necklace", Price: 450.00},
			{ID: "silver-ring", Name: "Silver Ring", Price: 85.00},
		},
	},
	{
		Slug:  "computers",
		Label: "Computers",
		Tabs:  []string{"Desktops", "Notebooks", "Accessories"},
	},
	{
		Slug:  "desktops",
		Label: "Desktops",
		Tabs:  []string{"Desktops", "Notebooks", "Accessories"},
		Products: []Product{
			{ID: "desktop-pro", Name: "Desktop Pro", Price: 1500.00},
			{ID: "desktop-base", Name: "Desktop Base", Price: 800.00},
			{ID: "desktop-plus", Name: "Desktop Plus", Price: 1200.00},
		},
	},
	{
		Slug:  "notebooks",
		Label: "Notebooks",
		Tabs:  []string{"Desktops", "Notebooks", "Accessories"},
		Products: []Product{
			{ID: "notebook-14", Name: "Notebook 14\"", Price: 1100.00},
			{ID: "notebook-16", Name: "Notebook 16\"", Price: 1750.00},
			{ID: "notebook-air", Name: "Notebook Air", Price: 990.00},
		},
	},
	{
		Slug:  "accessories",
		Label: "Accessories",
		Tabs:  []string{"Desktops", "Notebooks", "Accessories"},
		Products: []Product{
			{ID: "mouse", Name: "Mouse", Price: 25.00},
			{ID: "keyboard", Name: "Keyboard", Price: 60.00},
			{ID: "usb-hub", Name: "USB Hub", Price: 15.00},
		},
	},
}

func findCategory(slug string) *Category {
	for i := range catalog {
		if catalog[i].Slug == slug {
			return &catalog[i]
		}
	}
	return nil
}

func findProduct(id string) *Product {
	for i := range catalog {
		for j := range catalog[i].Products {
			if catalog[i].Products[j].ID == id {
				return &catalog[i].Products[j]
			}
		}
	}
	return nil
}

// sortedByPrice returns the products in ascending price order.
func sortedByPrice(products []Product) []Product {
	out := make([]Product, len(products))
	copy(out, products)
	sort.Slice(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	return out
}

// lineItem is the single cart line the scenarios exercise.
type lineItem struct {
	Product  Product
	Quantity int
}

// visitorState is the server-side state tied to one cookie jar.
type visitorState struct {
	Cart     *lineItem
	LoggedIn bool
	QtyError string
}

// store holds per-visitor state, keyed by session cookie. Visitors never
// share state; the mutex only guards the map itself and each visitor is
// driven by a single cooperative test flow.
type store struct {
	mu       sync.Mutex
	visitors map[string]*visitorState
}

func newStore() *store {
	return &store{visitors: make(map[string]*visitorState)}
}

func (s *store) get(id string) *visitorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.visitors[id]
	if !ok {
		v = &visitorState{}
		s.visitors[id] = v
	}
	return v
}

const sessionCookie = "shopsession"

// Server is the stub storefront. It implements http.Handler.
type Server struct {
	opts  Options
	store *store
	mux   *http.ServeMux
}

// New creates a stub storefront with the given options.
func New(opts Options) *Server {
	if opts.MaxQuantity <= 0 {
		opts.MaxQuantity = 10000
	}
	s := &Server{opts: opts, store: newStore(), mux: http.NewServeMux()}
	s.mux.HandleFunc("/", s.handleHome)
	s.mux.HandleFunc("/category/", s.handleCategory)
	s.mux.HandleFunc("/product/", s.handleProduct)
	s.mux.HandleFunc("/cart/add/", s.handleCartAdd)
	s.mux.HandleFunc("/cart", s.handleCart)
	s.mux.HandleFunc("/cart/update", s.handleCartUpdate)
	s.mux.HandleFunc("/login", s.handleLogin)
	s.mux.HandleFunc("/logout", s.handleLogout)
	s.mux.HandleFunc("/checkout", s.handleCheckout)
	s.mux.HandleFunc("/checkout/billing", s.handleBilling)
	s.mux.HandleFunc("/checkout/shipping", s.handleShipping)
	s.mux.HandleFunc("/checkout/payment-method", s.handlePaymentMethod)
	s.mux.HandleFunc("/checkout/payment-info", s.handlePaymentInfo)
	s.mux.HandleFunc("/checkout/confirm", s.handleConfirm)
	s.mux.HandleFunc("/checkout/completed", s.handleCompleted)
	return s
}

// ServeHTTP attaches the visitor session cookie and dispatches.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if _, err := r.Cookie(sessionCookie); err != nil {
		id := uuid.New().String()
		http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: id, Path: "/"})
		r.AddCookie(&http.Cookie{Name: sessionCookie, Value: id})
	}
	s.mux.ServeHTTP(w, r)
}

// visitor returns the state for the request's session cookie.
func (s *Server) visitor(r *http.Request) *visitorState {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return &visitorState{}
	}
	return s.store.get(c.Value)
}

// clampQuantity applies the storefront's quantity rules and returns the
// stored value plus an optional validation message. Zero empties the
// cart, negatives are rejected with a visible error, oversized values are
// silently clamped.
func (s *Server) clampQuantity(v *visitorState, raw string) {
	v.QtyError = ""
	qty, err := strconv.Atoi(raw)
	if err != nil {
		v.QtyError = "Please enter a valid quantity."
		return
	}
	switch {
	case qty == 0:
		v.Cart = nil
	case qty < 0:
		v.QtyError = "Quantity should be positive."
	case qty > s.opts.MaxQuantity:
		v.Cart.Quantity = s.opts.MaxQuantity
	default:
		v.Cart.Quantity = qty
	}
}
