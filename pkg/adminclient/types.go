package adminclient

import (
	"errors"
	"fmt"
	"time"
)

// CodeOK is the envelope code the backend uses for success.
const CodeOK = 200

// Sentinel errors for admin client operations.
var (
	// ErrNotFound is returned when the backend answers 404.
	ErrNotFound = errors.New("not found")
	// ErrInvalidPayload is returned by the raw variants when the body is
	// not valid JSON. No request is issued.
	ErrInvalidPayload = errors.New("payload is not valid JSON")
)

// Response is the uniform envelope around every backend response.
type Response[T any] struct {
	Code    int    `json:"code"`
	Data    T      `json:"data"`
	Message string `json:"message"`
}

// OK reports whether the backend accepted the call.
func (r *Response[T]) OK() bool {
	return r != nil && r.Code == CodeOK
}

// Err converts a non-success envelope into an error. It returns nil for
// successful envelopes.
func (r *Response[T]) Err() error {
	if r == nil {
		return errors.New("empty response")
	}
	if r.Code == CodeOK {
		return nil
	}
	if r.Message == "" {
		return fmt.Errorf("backend returned code %d", r.Code)
	}
	return fmt.Errorf("backend returned code %d: %s", r.Code, r.Message)
}

// PageSort orders a list query by one field.
type PageSort struct {
	Field string `json:"field"`
	Order string `json:"order"` // asc or desc
}

// PageCondition is one filter criterion of a list query.
type PageCondition struct {
	Field    string `json:"field"`
	Value    any    `json:"value"`
	Logic    string `json:"logic,omitempty"`    // and / or
	Operator string `json:"operator,omitempty"` // like, =, in ...
}

// PageQuery carries pagination and filter criteria for list endpoints.
type PageQuery struct {
	Page       int              `json:"page,omitempty"`
	PageSize   int              `json:"page_size,omitempty"`
	Sorts      []*PageSort      `json:"sorts,omitempty"`
	Conditions []*PageCondition `json:"conditions,omitempty"`
}

// PageResult is the data of a list response.
type PageResult[T any] struct {
	List     []T   `json:"list"`
	Total    int64 `json:"total"`
	Page     int   `json:"page,omitempty"`
	PageSize int   `json:"page_size,omitempty"`
}

// IDRequest identifies a single record.
type IDRequest struct {
	ID int64 `json:"id"`
}

// BatchResult reports how many rows a mutation touched.
type BatchResult struct {
	SuccessCount int64 `json:"success_count"`
}

// Category is an article category.
type Category struct {
	ID           int64     `json:"id,omitempty"`
	CategoryName string    `json:"category_name"`
	ArticleCount int64     `json:"article_count,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitzero"`
	UpdatedAt    time.Time `json:"updated_at,omitzero"`
}

// Tag is an article tag.
type Tag struct {
	ID           int64     `json:"id,omitempty"`
	TagName      string    `json:"tag_name"`
	ArticleCount int64     `json:"article_count,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitzero"`
	UpdatedAt    time.Time `json:"updated_at,omitzero"`
}

// Article is a blog post as seen by the admin console.
type Article struct {
	ID            int64     `json:"id,omitempty"`
	ArticleTitle  string    `json:"article_title"`
	ArticleCover  string    `json:"article_cover,omitempty"`
	ArticleType   int       `json:"article_type,omitempty"`
	ArticleStatus int       `json:"article_status,omitempty"`
	CategoryName  string    `json:"category_name,omitempty"`
	TagNameList   []string  `json:"tag_name_list,omitempty"`
	IsTop         int       `json:"is_top,omitempty"`
	IsDelete      int       `json:"is_delete,omitempty"`
	CreatedAt     time.Time `json:"created_at,omitzero"`
	UpdatedAt     time.Time `json:"updated_at,omitzero"`
}

// Role is an access-control role.
type Role struct {
	ID          int64     `json:"id,omitempty"`
	RoleName    string    `json:"role_name"`
	RoleComment string    `json:"role_comment"`
	IsDisable   int       `json:"is_disable,omitempty"`
	IsDefault   int       `json:"is_default,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
	UpdatedAt   time.Time `json:"updated_at,omitzero"`
}

// User status values used by the status switch.
const (
	UserStatusNormal   = 0
	UserStatusDisabled = 1
)

// User is a registered account with its roles.
type User struct {
	ID        int64     `json:"id,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	Nickname  string    `json:"nickname"`
	LoginType string    `json:"login_type,omitempty"`
	Roles     []*Role   `json:"roles,omitempty"`
	Status    int       `json:"status"`
	IPAddress string    `json:"ip_address,omitempty"`
	IPSource  string    `json:"ip_source,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
	LoginAt   time.Time `json:"login_at,omitzero"`
}

// UpdateUserRolesRequest replaces the roles of one user.
type UpdateUserRolesRequest struct {
	UserID  int64   `json:"user_id"`
	RoleIDs []int64 `json:"role_ids"`
}

// UpdateUserStatusRequest enables or disables one user.
type UpdateUserStatusRequest struct {
	UserID int64 `json:"user_id"`
	Status int   `json:"status"`
}

// Endpoint is a backend API route registered for permission management.
type Endpoint struct {
	ID        int64     `json:"id,omitempty"`
	ParentID  int64     `json:"parent_id,omitempty"`
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	Method    string    `json:"method"`
	Traceable int       `json:"traceable,omitempty"`
	Status    int       `json:"status,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// EndpointDetails is an endpoint group with its children.
type EndpointDetails struct {
	Endpoint
	Children []*EndpointDetails `json:"children,omitempty"`
}
