package stubshop

import (
	"net/http"
	"strings"
)

// pageData is the payload every template receives.
type pageData struct {
	Title    string
	LoggedIn bool
	Data     any
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, t pageTemplate, title string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := t.ExecuteTemplate(w, "layout", pageData{
		Title:    title,
		LoggedIn: s.visitor(r).LoggedIn,
		Data:     data,
	})
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	var top []Category
	for _, c := range catalog {
		switch c.Slug {
		case "books", "apparel-shoes", "jewelry", "computers":
			top = append(top, c)
		}
	}
	s.render(w, r, homeTmpl, "Demo Web Shop", top)
}

type categoryView struct {
	Category Category
	Products []Product
	Sorted   bool
}

func (s *Server) handleCategory(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimPrefix(r.URL.Path, "/category/")
	cat := findCategory(slug)
	if cat == nil {
		http.NotFound(w, r)
		return
	}
	view := categoryView{Category: *cat, Products: cat.Products}
	if r.URL.Query().Get("orderby") == "priceasc" {
		view.Products = sortedByPrice(cat.Products)
		view.Sorted = true
	}
	s.render(w, r, categoryTmpl, cat.Label, view)
}

type productView struct {
	Product Product
	Added   bool
}

func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/product/")
	if id, ok := strings.CutSuffix(rest, "/review"); ok {
		s.handleReview(w, r, id)
		return
	}
	p := findProduct(rest)
	if p == nil {
		http.NotFound(w, r)
		return
	}
	s.render(w, r, productTmpl, p.Name, productView{
		Product: *p,
		Added:   r.URL.Query().Get("added") == "1",
	})
}

func (s *Server) handleCartAdd(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/cart/add/")
	p := findProduct(id)
	if p == nil {
		http.NotFound(w, r)
		return
	}
	v := s.visitor(r)
	if v.Cart != nil && v.Cart.Product.ID == p.ID {
		v.Cart.Quantity++
	} else {
		v.Cart = &lineItem{Product: *p, Quantity: 1}
	}
	http.Redirect(w, r, "/product/"+id+"?added=1", http.StatusSeeOther)
}

type cartView struct {
	Item     *lineItem
	QtyError string
}

func (s *Server) handleCart(w http.ResponseWriter, r *http.Request) {
	v := s.visitor(r)
	s.render(w, r, cartTmpl, "Shopping cart", cartView{Item: v.Cart, QtyError: v.QtyError})
}

func (s *Server) handleCartUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	v := s.visitor(r)
	if v.Cart == nil {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}
	if r.FormValue("removefromcart") != "" {
		v.Cart = nil
		v.QtyError = ""
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}
	s.clampQuantity(v, strings.TrimSpace(r.FormValue("qty")))
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

type loginView struct {
	Error string
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	v := s.visitor(r)
	if r.Method == http.MethodPost {
		if r.FormValue("Email") == s.opts.Email && r.FormValue("Password") == s.opts.Password {
			v.LoggedIn = true
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		s.render(w, r, loginTmpl, "Log in", loginView{Error: "Login was unsuccessful."})
		return
	}
	s.render(w, r, loginTmpl, "Log in", loginView{})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.visitor(r).LoggedIn = false
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

type reviewView struct {
	Product Product
	Result  string
}

func (s *Server) handleReview(w http.ResponseWriter, r *http.Request, id string) {
	p := findProduct(id)
	if p == nil {
		http.NotFound(w, r)
		return
	}
	view := reviewView{Product: *p}
	if r.Method == http.MethodPost {
		if s.visitor(r).LoggedIn {
			view.Result = "Product review is successfully added."
		} else {
			view.Result = "Only registered users can write reviews."
		}
	}
	s.render(w, r, reviewTmpl, "Product reviews", view)
}

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	v := s.visitor(r)
	if v.Cart == nil {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}
	if s.opts.GuestGate && !v.LoggedIn {
		s.render(w, r, guestGateTmpl, "Checkout", nil)
		return
	}
	http.Redirect(w, r, "/checkout/billing", http.StatusSeeOther)
}

func (s *Server) handleBilling(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		for _, field := range []string{
			"BillingNewAddress_FirstName", "BillingNewAddress_LastName",
			"BillingNewAddress_Email", "BillingNewAddress_City",
			"BillingNewAddress_Address1", "BillingNewAddress_ZipPostalCode",
			"BillingNewAddress_PhoneNumber",
		} {
			if strings.TrimSpace(r.FormValue(field)) == "" {
				http.Error(w, "Missing "+field, http.StatusBadRequest)
				return
			}
		}
		http.Redirect(w, r, "/checkout/shipping", http.StatusSeeOther)
		return
	}
	s.render(w, r, billingTmpl, "Billing address", nil)
}

func (s *Server) handleShipping(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		http.Redirect(w, r, "/checkout/payment-method", http.StatusSeeOther)
		return
	}
	s.render(w, r, shippingTmpl, "Shipping method", nil)
}

func (s *Server) handlePaymentMethod(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		http.Redirect(w, r, "/checkout/payment-info", http.StatusSeeOther)
		return
	}
	s.render(w, r, paymentMethodTmpl, "Payment method", nil)
}

func (s *Server) handlePaymentInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		http.Redirect(w, r, "/checkout/confirm", http.StatusSeeOther)
		return
	}
	s.render(w, r, paymentInfoTmpl, "Payment information", nil)
}

func (s *Server) handleConfirm(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		s.visitor(r).Cart = nil
		http.Redirect(w, r, "/checkout/completed", http.StatusSeeOther)
		return
	}
	s.render(w, r, confirmTmpl, "Confirm order", nil)
}

func (s *Server) handleCompleted(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, completedTmpl, "Thank you", nil)
}
