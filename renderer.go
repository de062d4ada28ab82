package cv2pdf

import "context"

// Renderer turns an ordered styled-block sequence into a paginated
// document, flowing content top to bottom and starting new pages when
// content overflows. Implementations must not reorder or drop blocks
// and must treat a table's row set atomically (row-level page breaks
// are allowed).
type Renderer interface {
	Render(ctx context.Context, blocks []StyledBlock, page *PageSettings) ([]byte, error)
	Close() error
}
