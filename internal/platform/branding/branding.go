// Package branding centralizes product naming for user-facing surfaces.
package branding

// AppName is the product name shown when no tenant theme applies.
const AppName = "Brandgate"
