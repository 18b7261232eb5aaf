// Package views holds the HTML templates and verifies them at startup, so a
// missing file fails the boot instead of a request.
package views

import (
	"fmt"
	"html/template"
)

// Required lists every template the handlers render.
var Required = []string{
	"login.tmpl",
	"signup.tmpl",
	"edit_profile.tmpl",
	"delete_account.tmpl",
	"store_list.tmpl",
	"store_detail.tmpl",
	"add_store.tmpl",
	"add_category.tmpl",
	"add_product.tmpl",
	"update_product.tmpl",
	"delete_product.tmpl",
	"lower_prices.tmpl",
	"category_products.tmpl",
	"search_results.tmpl",
}

// Verify parses the glob and checks every required template is present.
func Verify(glob string) error {
	ts, err := template.ParseGlob(glob)
	if err != nil {
		return fmt.Errorf("parse templates %q: %w", glob, err)
	}
	for _, name := range Required {
		if ts.Lookup(name) == nil {
			return fmt.Errorf("template %q missing from %q", name, glob)
		}
	}
	return nil
}
