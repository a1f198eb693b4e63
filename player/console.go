package player

import (
	"fmt"
	"io"
	"sync"
)

// Console serializes operator output. Informational lines go to out,
// failures and declines go to errOut.
type Console struct {
	lock   sync.Mutex
	out    io.Writer
	errOut io.Writer
}

func NewConsole(out, errOut io.Writer) *Console {
	return &Console{out: out, errOut: errOut}
}

func (c *Console) Println(lines ...string) {
	c.write(c.out, lines)
}

func (c *Console) Errorln(lines ...string) {
	c.write(c.errOut, lines)
}

func (c *Console) Printf(format string, args ...any) {
	c.Println(fmt.Sprintf(format, args...))
}

func (c *Console) Errorf(format string, args ...any) {
	c.Errorln(fmt.Sprintf(format, args...))
}

func (c *Console) write(w io.Writer, lines []string) {
	c.lock.Lock()
	defer c.lock.Unlock()
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}
