package model

// Connection is a stored connection profile. Optional columns are
// pointers so an absent value stays distinguishable from an empty one
// and inherits from lower-precedence layers at resolution time.
type Connection struct {
	ID          int64
	Nickname    string
	Host        string
	User        *string
	Description *string
	Args        *string
	Identity    *string
	Command     *string
	Binary      *string
}

// OptionalColumns lists the nullable connection columns in store order.
var OptionalColumns = []string{"user", "description", "args", "identity", "command", "binary"}

// Optional returns a pointer to the named optional column, or nil for
// an unknown name.
func (c *Connection) Optional(column string) **string {
	switch column {
	case "user":
		return &c.User
	case "description":
		return &c.Description
	case "args":
		return &c.Args
	case "identity":
		return &c.Identity
	case "command":
		return &c.Command
	case "binary":
		return &c.Binary
	}

	return nil
}

// Ptr returns a pointer to s, or nil when s is empty. Empty strings are
// stored as NULL so they never shadow a lower-precedence layer.
func Ptr(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

// Deref returns the value behind p, or "" when p is nil.
func Deref(p *string) string {
	if p == nil {
		return ""
	}

	return *p
}
