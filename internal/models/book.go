package models

// Book is a catalog entry. Optional metadata is nil when unknown.
type Book struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	Genre           *string `json:"genre"`
	Publisher       *string `json:"publisher"`
	PublicationDate *string `json:"publicationDate"`
	IsAvailable     bool    `json:"isAvailable"`
	IsDisabled      bool    `json:"isDisabled"`
}

// BookRef is the minimal projection used by list views.
type BookRef struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// Ref returns the minimal public view of the book.
func (b Book) Ref() BookRef {
	return BookRef{ID: b.ID, Title: b.Title}
}
