//go:build !pawlistdebug

package pawlist

const checkIterators = false
