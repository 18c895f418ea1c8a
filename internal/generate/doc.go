// Package generate produces identifiers, passwords and placeholder text.
// UUIDs and passwords draw from crypto/rand; lorem ipsum does not need to.
package generate
