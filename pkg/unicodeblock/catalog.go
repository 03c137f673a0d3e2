package unicodeblock

import (
	"fmt"
	"iter"
)

// Catalog is an ordered, immutable list of blocks. The zero value is an empty
// catalog. Catalog values are cheap to copy and safe for concurrent use.
//
// The enumeration order is the order reports are produced in. Lookups by name
// go through an index built once at construction.
type Catalog struct {
	blocks []Block
	index  map[string]int
}

var standard = mustCatalog(standardBlocks[:]...)

// Standard returns the catalog of every Unicode block of UnicodeVersion,
// sorted by name. Block names are lower camel case, e.g. "basicLatin" and
// "cjkUnifiedIdeographsExtensionA".
func Standard() Catalog {
	return standard
}

// NewCatalog builds a catalog that enumerates blocks in the given order.
// Ranges may overlap; names must be unique.
//
// Returns:
//   - Catalog: the new catalog
//   - error: the first *ValidationError of an invalid or duplicate block
//
// Example:
//
//	kana, err := unicodeblock.NewCatalog(
//	    unicodeblock.Block{Name: "hiragana", Low: 0x3040, High: 0x309F},
//	    unicodeblock.Block{Name: "katakana", Low: 0x30A0, High: 0x30FF},
//	)
func NewCatalog(blocks ...Block) (Catalog, error) {
	c := Catalog{
		blocks: make([]Block, 0, len(blocks)),
		index:  make(map[string]int, len(blocks)),
	}
	for _, b := range blocks {
		if err := b.Validate(); err != nil {
			return Catalog{}, err
		}
		if _, dup := c.index[b.Name]; dup {
			return Catalog{}, &ValidationError{Field: "name", Message: fmt.Sprintf("duplicate block %q", b.Name)}
		}
		c.index[b.Name] = len(c.blocks)
		c.blocks = append(c.blocks, b)
	}
	return c, nil
}

// mustCatalog panics on invalid package-level data.
func mustCatalog(blocks ...Block) Catalog {
	c, err := NewCatalog(blocks...)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of blocks.
func (c Catalog) Len() int { return len(c.blocks) }

// At returns the i-th block. It panics if i is out of range.
func (c Catalog) At(i int) Block { return c.blocks[i] }

// Blocks returns a copy of the blocks in enumeration order.
func (c Catalog) Blocks() []Block {
	out := make([]Block, len(c.blocks))
	copy(out, c.blocks)
	return out
}

// All yields blocks in enumeration order.
func (c Catalog) All() iter.Seq2[int, Block] {
	return func(yield func(int, Block) bool) {
		for i, b := range c.blocks {
			if !yield(i, b) {
				return
			}
		}
	}
}

// Names returns the block names in enumeration order.
func (c Catalog) Names() []string {
	out := make([]string, len(c.blocks))
	for i, b := range c.blocks {
		out[i] = b.Name
	}
	return out
}

// Lookup finds a block by name.
func (c Catalog) Lookup(name string) (Block, bool) {
	i, ok := c.index[name]
	if !ok {
		return Block{}, false
	}
	return c.blocks[i], true
}

// Position returns the enumeration index of name, or -1.
func (c Catalog) Position(name string) int {
	if i, ok := c.index[name]; ok {
		return i
	}
	return -1
}

// Subset returns a catalog holding only the named blocks. The result keeps the
// receiver's order regardless of the order of names; repeated names are ignored.
// Returns an error wrapping ErrUnknownBlock for the first name not in c.
func (c Catalog) Subset(names ...string) (Catalog, error) {
	keep := make([]bool, len(c.blocks))
	for _, n := range names {
		i, ok := c.index[n]
		if !ok {
			return Catalog{}, fmt.Errorf("%w: %q", ErrUnknownBlock, n)
		}
		keep[i] = true
	}

	out := Catalog{index: make(map[string]int, len(names))}
	for i, b := range c.blocks {
		if !keep[i] {
			continue
		}
		out.index[b.Name] = len(out.blocks)
		out.blocks = append(out.blocks, b)
	}
	return out, nil
}
