package dto

import "github.com/hongminglow/library-be/internal/models"

type CreateBookRequest struct {
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	Genre           *string `json:"genre"`
	Publisher       *string `json:"publisher"`
	PublicationDate *string `json:"publicationDate"`
}

// UpdateBookRequest is a partial update: absent fields keep their value.
type UpdateBookRequest struct {
	Title           Optional[string] `json:"title"`
	Author          Optional[string] `json:"author"`
	Genre           Optional[string] `json:"genre"`
	Publisher       Optional[string] `json:"publisher"`
	PublicationDate Optional[string] `json:"publicationDate"`
	IsAvailable     Optional[bool]   `json:"isAvailable"`
}

// BookQuery holds the raw catalog filters taken from the query string.
type BookQuery struct {
	Genre     string
	Publisher string
	Author    string
	Title     string
	Available *bool
	FromDate  string
	ToDate    string
	Page      int
	Limit     int
}

type Pagination struct {
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
	Limit      int `json:"limit"`
	TotalItems int `json:"totalItems"`
}

type BookPage struct {
	Data       []models.BookRef `json:"data"`
	Pagination Pagination       `json:"pagination"`
}
