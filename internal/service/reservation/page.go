package reservation

const (
	DefaultPageSize = 20
	MaxPageSize     = 2000
)

type PageRequest struct {
	Page int
	Size int
}

type TicketPage struct {
	Content          []TicketSummary `json:"content"`
	Number           int             `json:"number"`
	Size             int             `json:"size"`
	NumberOfElements int             `json:"numberOfElements"`
	TotalElements    int             `json:"totalElements"`
	TotalPages       int             `json:"totalPages"`
	First            bool            `json:"first"`
	Last             bool            `json:"last"`
	Empty            bool            `json:"empty"`
}

// paginate slices items into a page of req.Size.
//
// Only the size of the request is honoured: the page index is dropped and every call returns
// the first page with page number 0. Existing clients rely on this, so it is kept as is.
func paginate(items []TicketSummary, req PageRequest) *TicketPage {
	size := req.Size
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	pageable := PageRequest{Page: 0, Size: size}

	total := len(items)
	start := min(pageable.Page*pageable.Size, total)
	end := min(start+pageable.Size, total)
	content := items[start:end]

	totalPages := (total + size - 1) / size
	return &TicketPage{
		Content:          content,
		Number:           pageable.Page,
		Size:             size,
		NumberOfElements: len(content),
		TotalElements:    total,
		TotalPages:       totalPages,
		First:            pageable.Page == 0,
		Last:             pageable.Page+1 >= totalPages,
		Empty:            len(content) == 0,
	}
}
