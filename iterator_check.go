//go:build pawlistdebug

package pawlist

const checkIterators = true
