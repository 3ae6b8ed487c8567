package response

type DeleteResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

// UserCreatedResponse mirrors an insert result; InsertedID is null when the
// user already existed.
type UserCreatedResponse struct {
	Message      string  `json:"message,omitempty"`
	Acknowledged bool    `json:"acknowledged"`
	InsertedID   *string `json:"insertedId"`
}

type RoleResponse struct {
	Role string `json:"role"`
}

type BannerResponse struct {
	Message string `json:"message"`
}
