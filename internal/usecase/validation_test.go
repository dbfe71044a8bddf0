package usecase

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func validOrder() model.NewOrder {
	return model.NewOrder{
		UserID:      "user-1",
		Items:       []model.NewOrderItem{{ProductID: "p1", Quantity: 2, Price: dec("29.99")}},
		TotalAmount: dec("59.98"),
	}
}

func TestValidatorOrder(t *testing.T) {
	v := NewValidator()

	if err := v.Order(validOrder()); err != nil {
		t.Fatalf("expected valid order, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*model.NewOrder)
		want   error
	}{
		{"no items", func(o *model.NewOrder) { o.Items = nil }, domainErrors.ErrEmptyOrder},
		{"missing product", func(o *model.NewOrder) { o.Items[0].ProductID = "" }, domainErrors.ErrInvalidOrderItem},
		{"zero quantity", func(o *model.NewOrder) { o.Items[0].Quantity = 0 }, domainErrors.ErrInvalidOrderItem},
		{"missing price", func(o *model.NewOrder) { o.Items[0].Price = nil }, domainErrors.ErrInvalidOrderItem},
		{"negative price", func(o *model.NewOrder) { o.Items[0].Price = dec("-1") }, domainErrors.ErrInvalidOrderItem},
		{"missing total", func(o *model.NewOrder) { o.TotalAmount = nil }, domainErrors.ErrInvalidAmount},
		{"negative total", func(o *model.NewOrder) { o.TotalAmount = dec("-0.01") }, domainErrors.ErrInvalidAmount},
		{"blank address field", func(o *model.NewOrder) {
			o.ShippingAddress = &model.NewShippingAddress{FullName: "Jane", Street: "  ", City: "Town", PostalCode: "1", Country: "NL"}
		}, domainErrors.ErrInvalidShippingAddress},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validOrder()
			tc.mutate(&in)
			if err := v.Order(in); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	in := validOrder()
	in.ShippingAddress = &model.NewShippingAddress{FullName: "Jane", Street: "1 Main", City: "Town", PostalCode: "1000", Country: "NL"}
	in.TotalAmount = dec("0")
	in.Items[0].Price = dec("0")
	if err := v.Order(in); err != nil {
		t.Fatalf("expected free order with address to be valid, got %v", err)
	}
}

func TestValidatorStatus(t *testing.T) {
	v := NewValidator()
	for _, s := range model.OrderStatuses {
		if err := v.Status(s); err != nil {
			t.Fatalf("expected %s to be valid, got %v", s, err)
		}
	}
	if err := v.Status("SHIPPED"); !errors.Is(err, domainErrors.ErrInvalidStatus) {
		t.Fatalf("expected invalid status, got %v", err)
	}
}

func TestValidatorCartInput(t *testing.T) {
	v := NewValidator()
	if err := v.CartQuantity(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := v.CartQuantity(0); !errors.Is(err, domainErrors.ErrInvalidQuantity) {
		t.Fatalf("expected invalid quantity, got %v", err)
	}
	if err := v.ProductID(" "); !errors.Is(err, domainErrors.ErrMissingProduct) {
		t.Fatalf("expected missing product, got %v", err)
	}
	if err := v.ProductID("p1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidatorProducts(t *testing.T) {
	v := NewValidator()

	if err := v.NewProduct(model.NewProduct{Name: "Pen", Price: decimal.RequireFromString("1.50"), Stock: 0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, in := range []model.NewProduct{
		{Name: "", Price: decimal.Zero},
		{Name: "Pen", Price: decimal.RequireFromString("-1")},
		{Name: "Pen", Price: decimal.Zero, Stock: -1},
	} {
		if err := v.NewProduct(in); !errors.Is(err, domainErrors.ErrInvalidProduct) {
			t.Fatalf("expected invalid product for %+v, got %v", in, err)
		}
	}

	empty := ""
	negative := -2
	for _, upd := range []model.ProductUpdate{
		{Name: &empty},
		{Stock: &negative},
		{Price: dec("-3")},
	} {
		if err := v.ProductUpdate(upd); !errors.Is(err, domainErrors.ErrInvalidProduct) {
			t.Fatalf("expected invalid update for %+v, got %v", upd, err)
		}
	}
	if err := v.ProductUpdate(model.ProductUpdate{}); err != nil {
		t.Fatalf("empty update must be valid, got %v", err)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Home Office":        "home-office",
		"  Garden & Patio  ": "garden-patio",
		"Kids' Toys 2024":    "kids-toys-2024",
		"---":                "",
		"Électronique":       "électronique",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
