package geo

import "errors"

// ErrPlaceNotFound reports a place name the geocoder has no match for.
var ErrPlaceNotFound = errors.New("place not found")
