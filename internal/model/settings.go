package model

// Settings is the effective configuration of a connection after all
// precedence layers have been merged. Every field is concrete; absent
// optionals come through as empty strings.
type Settings struct {
	ID          int64
	Nickname    string
	Binary      string
	Host        string
	User        string
	Description string
	Args        string
	Identity    string
	Command     string
}

// Defaults holds the named default settings stored alongside the
// connections. A nil field means the default is unset and never
// overrides a lower-precedence layer.
type Defaults struct {
	User     *string
	Args     *string
	Identity *string
	Command  *string
	Binary   *string
}

// DefaultKeys lists the recognized default setting names.
var DefaultKeys = []string{"binary", "user", "args", "identity", "command"}

// Value returns the stored default for key, or nil for an unset or
// unknown key.
func (d Defaults) Value(key string) *string {
	switch key {
	case "user":
		return d.User
	case "args":
		return d.Args
	case "identity":
		return d.Identity
	case "command":
		return d.Command
	case "binary":
		return d.Binary
	}

	return nil
}

// Apply overrides the matching settings field for every non-nil
// default value.
func (d Defaults) Apply(s *Settings) {
	if d.User != nil {
		s.User = *d.User
	}
	if d.Args != nil {
		s.Args = *d.Args
	}
	if d.Identity != nil {
		s.Identity = *d.Identity
	}
	if d.Command != nil {
		s.Command = *d.Command
	}
	if d.Binary != nil {
		s.Binary = *d.Binary
	}
}

// ApplyConnection overrides the matching settings field for every
// non-nil, non-empty connection column. Host and nickname always win
// because the store never allows them to be empty.
func (s *Settings) ApplyConnection(c *Connection) {
	s.ID = c.ID
	s.Nickname = c.Nickname
	s.Host = c.Host

	set := func(dst *string, src *string) {
		if src != nil && *src != "" {
			*dst = *src
		}
	}

	set(&s.User, c.User)
	set(&s.Description, c.Description)
	set(&s.Args, c.Args)
	set(&s.Identity, c.Identity)
	set(&s.Command, c.Command)
	set(&s.Binary, c.Binary)
}
