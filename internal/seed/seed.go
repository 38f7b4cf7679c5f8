// Package seed provides the built-in starter set of catalog records.
package seed

import "github.com/listenupapp/bookcatalog/internal/domain"

// defaultBooks is the starter catalog. Served through Books so callers
// cannot mutate the shared table.
var defaultBooks = []domain.Record{
	{Title: "The Hobbit", Author: "J.R.R. Tolkien", Year: 1937, Genre: "Fantasy"},
	{Title: "1984", Author: "George Orwell", Year: 1949, Genre: "Dystopian"},
	{Title: "To Kill a Mockingbird", Author: "Harper Lee", Year: 1960, Genre: "Fiction"},
	{Title: "The Road", Author: "Cormac McCarthy", Year: 2006, Genre: "Post-Apocalyptic"},
	{Title: "The Martian", Author: "Andy Weir", Year: 2011, Genre: "Sci-Fi"},
	{Title: "Dune", Author: "Frank Herbert", Year: 1965, Genre: "Sci-Fi"},
	{Title: "Brave New World", Author: "Aldous Huxley", Year: 1932, Genre: "Dystopian"},
	{Title: "Fahrenheit 451", Author: "Ray Bradbury", Year: 1953, Genre: "Dystopian"},
	{Title: "Pride and Prejudice", Author: "Jane Austen", Year: 1813, Genre: "Romance"},
	{Title: "Moby-Dick", Author: "Herman Melville", Year: 1851, Genre: "Adventure"},
}

// Books returns a fresh copy of the starter records.
func Books() []domain.Record {
	out := make([]domain.Record, len(defaultBooks))
	copy(out, defaultBooks)
	return out
}
