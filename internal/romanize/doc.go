// Package romanize transliterates Hangul into Latin script. Combined with
// the phonetic converter it produces the pronunciation strings returned by
// the API.
package romanize
