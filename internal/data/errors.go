package data

import "errors"

// ErrCatalog marks malformed or inconsistent catalog content discovered at
// load time: a skill referencing an unknown effect kind, an entity toolbelt
// naming a skill that does not exist, a duplicate id. Load functions wrap it
// with the offending entry so startup fails loudly instead of producing
// undefined combat math later.
var ErrCatalog = errors.New("invalid catalog data")
