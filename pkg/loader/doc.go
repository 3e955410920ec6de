// Package loader loads a validated census sample into response
// management: each row becomes a sample unit with a fresh id, published
// to the broker queue and cached in redis as
//
//	sample_unit:<id> => {"id": "<id>", "attributes": {<column>: <value>, ...}}
//
// LoadFile refuses to load a file that does not pass validation, and
// connects to the queue and the cache only after it did.
package loader
