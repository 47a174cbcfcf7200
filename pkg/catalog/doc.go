// Package catalog holds the client-side catalog state.
//
// A Store owns the categories, resources and view settings. Every operation
// that touches the gateway validates first, makes its remote calls in order
// and then applies exactly one Action through Reduce. Failures are reported
// to an Alerter and returned; local state is never partially updated.
//
// The authentication flag kept here gates editing affordances in the UI only.
// It is not access control.
package catalog
