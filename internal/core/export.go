package core

import (
	"io"

	"github.com/inovacc/sshcm/internal/encoding"
	"github.com/inovacc/sshcm/internal/store"
)

// Export writes every profile to w as CSV, raw stored values with no
// resolution applied.
func Export(st store.Store, w io.Writer) error {
	conns, err := st.ListConnections()
	if err != nil {
		return err
	}

	return encoding.WriteConnections(w, conns)
}
