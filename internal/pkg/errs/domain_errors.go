package errs

// Error categories. Callers branch on these with Is.
var (
	// ErrStorage marks connection and query failures. Never a business outcome.
	ErrStorage = New("storage operation failed")
	// ErrRejected marks business-rule rejections (a normal negative result).
	ErrRejected = New("request rejected")
	// ErrClassification marks image classification failures.
	ErrClassification = New("classification failed")
)

var (
	// Lot errors
	ErrLotNotFound = New("parking lot not found")

	// Rejections
	ErrLotFull             = inCategory(New("lot full"), ErrRejected)
	ErrOccupancyOutOfRange = inCategory(New("occupied count out of range"), ErrRejected)
	ErrInvalidReservation  = inCategory(New("invalid reservation"), ErrRejected)

	// Classification errors
	ErrInvalidImage     = inCategory(New("image cannot be decoded"), ErrClassification)
	ErrModelUnavailable = inCategory(New("classification model unavailable"), ErrClassification)

	// Admin errors
	ErrInvalidCredentials = New("invalid credentials")
	ErrTokenGeneration    = New("token generation failed")
)

// categorized makes a sentinel match its category without sharing an error
// mark with its siblings.
type categorized struct {
	error
	category error
}

func inCategory(err, category error) error {
	return &categorized{error: err, category: category}
}

func (e *categorized) Unwrap() error { return e.error }

func (e *categorized) Is(target error) bool { return target == e.category }
