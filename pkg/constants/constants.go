// Package constants provides shared constants used throughout the bookshelf codebase.
// This includes field limits, the hash table geometry, file permissions and the
// line markers of the persisted catalog format.
package constants

// Field limits are byte lengths. Longer input is truncated, never rejected.
const (
	// MaxTitleLength is the maximum number of bytes kept for a book title
	MaxTitleLength = 99

	// MaxAuthorLength is the maximum number of bytes kept for an author name
	MaxAuthorLength = 99

	// MaxGenreLength is the maximum number of bytes kept for a genre name
	MaxGenreLength = 49
)

// Hash table constants
const (
	// TableSize is the number of slots in the genre hash table
	TableSize = 101

	// HashSeed is the start value of the djb2 string hash
	HashSeed = 5381
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Persistence defaults
const (
	// DefaultCatalogFile is the catalog file used when none is configured
	DefaultCatalogFile = "books.txt"

	// DefaultBadgerDir is the badger directory used when none is configured
	DefaultBadgerDir = ".bookshelf-db"

	// StoreFile selects the plain text file store
	StoreFile = "file"

	// StoreBadger selects the badger key-value store
	StoreBadger = "badger"
)

// Line markers of the persisted text format
const (
	// BOM is the UTF-8 byte order mark written at the start of saved files
	BOM = "\xEF\xBB\xBF"

	GenrePrefix  = "GENRE:"
	TitlePrefix  = "TITLE:"
	AuthorPrefix = "AUTHOR:"
	GenreEnd     = "ENDGENRE"
)
