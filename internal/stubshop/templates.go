package stubshop

import (
	"html/template"
	"strings"
)

type pageTemplate = *template.Template

// mustPage builds a page template sharing the common layout.
func mustPage(content string) pageTemplate {
	t := template.New("layout").Funcs(template.FuncMap{
		"slug": strings.ToLower,
	})
	template.Must(t.Parse(layoutHTML))
	template.Must(t.New("content").Parse(content))
	return t
}

const layoutHTML = `<!DOCTYPE html>
<html>
<head><title>{{.Title}}</title></head>
<body>
<div class="header">
  <div class="header-links">
    {{if .LoggedIn}}<a href="/logout">Log out</a>{{else}}<a href="/login">Log in</a>{{end}}
    <a href="/cart">Shopping cart</a>
  </div>
  <ul class="top-menu">
    <li><a href="/category/books">Books</a></li>
    <li><a href="/category/apparel-shoes">Apparel &amp; Shoes</a></li>
    <li><a href="/category/jewelry">Jewelry</a></li>
    <li><a href="/category/computers">Computers</a></li>
  </ul>
</div>
<div class="master-wrapper-page">
{{template "content" .}}
</div>
</body>
</html>`

var homeTmpl = mustPage(`<div class="page home-page">
  <div class="page-title"><h1>Welcome to our store</h1></div>
  <ul class="category-navigation">
    {{range .Data}}<li><a href="/category/{{.Slug}}">{{.Label}}</a></li>
    {{end}}
  </ul>
</div>`)

var categoryTmpl = mustPage(`<div class="page category-page">
  <div class="page-title"><h1>{{.Data.Category.Label}}</h1></div>
  {{if .Data.Category.Tabs}}
  <ul class="sub-category-grid">
    {{range .Data.Category.Tabs}}<li><a href="/category/{{slug .}}">{{.}}</a></li>
    {{end}}
  </ul>
  {{end}}
  {{if .Data.Products}}
  <div class="product-sorting">
    <label for="products-orderby">Sort by</label>
    <select id="products-orderby" onchange="location = this.value;">
      <option value="/category/{{.Data.Category.Slug}}"{{if not .Data.Sorted}} selected{{end}}>Position</option>
      <option value="/category/{{.Data.Category.Slug}}?orderby=priceasc"{{if .Data.Sorted}} selected{{end}}>Price: Low to High</option>
    </select>
  </div>
  <div class="product-grid">
    {{range .Data.Products}}<div class="product-item">
      <h2 class="product-title"><a href="/product/{{.ID}}">{{.Name}}</a></h2>
      <div class="prices"><span class="price actual-price">{{.PriceText}}</span></div>
    </div>
    {{end}}
  </div>
  {{end}}
</div>`)

var productTmpl = mustPage(`{{if .Data.Added}}<div class="bar-notification success">
  <p class="content">The product has been added to your shopping cart</p>
</div>
{{end}}<div class="page product-details-page">
  <div class="page-title"><h1>{{.Data.Product.Name}}</h1></div>
  <div class="prices"><span class="price actual-price">{{.Data.Product.PriceText}}</span></div>
  <form method="post" action="/cart/add/{{.Data.Product.ID}}">
    <input type="submit" value="Add to cart" class="button-1 add-to-cart-button">
  </form>
  <div class="product-review-links">
    <a href="/product/{{.Data.Product.ID}}/review">Add your review</a>
  </div>
</div>`)

var cartTmpl = mustPage(`<div class="page shopping-cart-page">
  <div class="page-title"><h1>Shopping cart</h1></div>
  <div class="order-summary-content">
  {{if .Data.Item}}
    <form method="post" action="/cart/update">
      <table class="cart">
        <tr>
          <td><input type="checkbox" name="removefromcart" value="{{.Data.Item.Product.ID}}"></td>
          <td class="product"><a href="/product/{{.Data.Item.Product.ID}}">{{.Data.Item.Product.Name}}</a></td>
          <td class="unit-price">{{.Data.Item.Product.PriceText}}</td>
          <td class="qty"><input type="text" name="qty" class="qty-input" value="{{.Data.Item.Quantity}}"></td>
        </tr>
      </table>
      {{if .Data.QtyError}}<span class="field-validation-error">{{.Data.QtyError}}</span>
      {{end}}<input type="submit" name="updatecart" value="Update shopping cart" class="button-2 update-cart-button">
    </form>
    <div class="terms-of-service">
      <input id="termsofservice" type="checkbox" name="termsofservice">
      <label for="termsofservice">I agree with the terms of service</label>
    </div>
    <button id="checkout" type="button" disabled onclick="location = '/checkout';">Checkout</button>
    <script>
      document.getElementById('termsofservice').addEventListener('change', function () {
        document.getElementById('checkout').disabled = !this.checked;
      });
    </script>
  {{else}}
    Your Shopping Cart is empty!
  {{end}}
  </div>
</div>`)

var loginTmpl = mustPage(`<div class="page login-page">
  <div class="page-title"><h1>Welcome, Please Sign In!</h1></div>
  {{if .Data.Error}}<div class="message-error">{{.Data.Error}}</div>
  {{end}}<form method="post" action="/login">
    <label for="Email">Email:</label>
    <input id="Email" type="text" name="Email">
    <label for="Password">Password:</label>
    <input id="Password" type="password" name="Password">
    <input type="submit" class="button-1 login-button" value="Log in">
  </form>
</div>`)

var guestGateTmpl = mustPage(`<div class="page checkout-page">
  <div class="page-title"><h1>Welcome, Please Sign In!</h1></div>
  <div class="checkout-as-guest-or-register-block">
    <form method="get" action="/checkout/billing">
      <input type="submit" class="button-1 checkout-as-guest-button" value="Checkout as Guest">
    </form>
  </div>
</div>`)

var billingTmpl = mustPage(`<div class="page checkout-page">
  <div class="page-title"><h1>Billing address</h1></div>
  <form method="post" action="/checkout/billing">
    <input id="BillingNewAddress_FirstName" type="text" name="BillingNewAddress_FirstName">
    <input id="BillingNewAddress_LastName" type="text" name="BillingNewAddress_LastName">
    <input id="BillingNewAddress_Email" type="text" name="BillingNewAddress_Email">
    <select id="BillingNewAddress_CountryId" name="BillingNewAddress_CountryId">
      <option value="0" selected>Select country</option>
      <option value="1">United States</option>
      <option value="2">Canada</option>
      <option value="3">Kazakhstan</option>
    </select>
    <input id="BillingNewAddress_City" type="text" name="BillingNewAddress_City">
    <input id="BillingNewAddress_Address1" type="text" name="BillingNewAddress_Address1">
    <input id="BillingNewAddress_ZipPostalCode" type="text" name="BillingNewAddress_ZipPostalCode">
    <input id="BillingNewAddress_PhoneNumber" type="text" name="BillingNewAddress_PhoneNumber">
    <input type="submit" class="button-1 new-address-next-step-button" value="Continue">
  </form>
</div>`)

var shippingTmpl = mustPage(`<div class="page checkout-page">
  <div class="page-title"><h1>Shipping method</h1></div>
  <form id="shipping-form" method="post" action="/checkout/shipping">
    <input id="PickUpInStore" type="checkbox" name="PickUpInStore" value="true">
    <label for="PickUpInStore">Pick Up in Store</label>
    <input type="button" class="button-1 new-address-next-step-button" onclick="Shipping.save()" value="Continue">
  </form>
  <script>
    var Shipping = {
      save: function () { document.getElementById('shipping-form').submit(); }
    };
  </script>
</div>`)

var paymentMethodTmpl = mustPage(`<div class="page checkout-page">
  <div class="page-title"><h1>Payment method</h1></div>
  <form method="post" action="/checkout/payment-method">
    <input id="paymentmethod_0" type="radio" name="paymentmethod" value="0" checked>
    <label for="paymentmethod_0">Cash On Delivery (COD)</label>
    <input type="submit" class="button-1 payment-method-next-step-button" value="Continue">
  </form>
</div>`)

var paymentInfoTmpl = mustPage(`<div class="page checkout-page">
  <div class="page-title"><h1>Payment information</h1></div>
  <form method="post" action="/checkout/payment-info">
    <p>You will pay by COD.</p>
    <input type="submit" class="button-1 payment-info-next-step-button" value="Continue">
  </form>
</div>`)

var confirmTmpl = mustPage(`<div class="page checkout-page">
  <div class="page-title"><h1>Confirm order</h1></div>
  <form method="post" action="/checkout/confirm">
    <input type="submit" class="button-1 confirm-order-next-step-button" value="Confirm">
  </form>
</div>`)

var completedTmpl = mustPage(`<div class="page checkout-page">
  <div class="section order-completed">
    <div class="title"><strong>Your order has been successfully processed!</strong></div>
    <div class="details"><a href="/">Continue</a></div>
  </div>
</div>`)

var reviewTmpl = mustPage(`<div class="page product-reviews-page">
  <div class="page-title"><h1>Product reviews for {{.Data.Product.Name}}</h1></div>
  {{if .Data.Result}}<div class="result">{{.Data.Result}}</div>
  {{end}}<form method="post" action="/product/{{.Data.Product.ID}}/review">
    <input id="AddProductReview_Title" type="text" name="AddProductReview.Title">
    <textarea id="AddProductReview_ReviewText" name="AddProductReview.ReviewText"></textarea>
    <div class="review-rating">
      <input id="addproductrating_1" type="radio" name="AddProductReview.Rating" value="1">
      <input id="addproductrating_2" type="radio" name="AddProductReview.Rating" value="2">
      <input id="addproductrating_3" type="radio" name="AddProductReview.Rating" value="3">
      <input id="addproductrating_4" type="radio" name="AddProductReview.Rating" value="4">
      <input id="addproductrating_5" type="radio" name="AddProductReview.Rating" value="5">
    </div>
    <input type="submit" class="button-1 write-product-review-button" value="Submit review">
  </form>
</div>`)
