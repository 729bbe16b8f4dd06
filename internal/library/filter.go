package library

import "github.com/vmunix/streamgen/pkg/streamlink"

// TitleFilter specifies criteria for listing titles.
type TitleFilter struct {
	Type   *streamlink.Mode
	Query  *string // substring match on title, case-insensitive
	Limit  int     // 0 = no limit
	Offset int
}
