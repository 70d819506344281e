package phone

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/phone.go/pkg/cli/sh"
	"github.com/robotalks/phone.go/pkg/dial"
	"github.com/robotalks/phone.go/pkg/keypad"
	"github.com/robotalks/phone.go/pkg/number"
	"github.com/robotalks/phone.go/pkg/phone/msgs"
)

// TerminatorHoldMs is how long phone.dial holds the terminator,
// comfortably over keypad.LongPressWindow.
const TerminatorHoldMs = 1200

var (
	// StatusCmd exposes StatusQuery command.
	StatusCmd = ishell.Cmd{
		Name:    "phone.status",
		Aliases: []string{"ps"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, &msgs.StatusQuery{})
		}),
	}

	// ModeCmd exposes ModeSet command.
	ModeCmd = ishell.Cmd{
		Name:    "phone.mode",
		Aliases: []string{"pm"},
		Help:    "dial|relay",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			if len(c.Args) != 1 {
				c.Err(fmt.Errorf("mode expected"))
				return
			}
			if _, err := dial.ParseMode(c.Args[0]); err != nil {
				c.Err(err)
				return
			}
			sh.DoCommand(c, &msgs.ModeSet{Mode: c.Args[0]})
		}),
	}

	// ClearCmd exposes BufferClear command.
	ClearCmd = ishell.Cmd{
		Name:    "phone.clear",
		Aliases: []string{"pc"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, &msgs.BufferClear{})
		}),
	}

	// TapCmd exposes KeyInject command.
	TapCmd = ishell.Cmd{
		Name:    "phone.tap",
		Aliases: []string{"pt"},
		Help:    "KEY [HOLD(ms)]",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("key expected"))
				return
			}
			msg := msgs.KeyInject{Key: c.Args[0]}
			if len(c.Args) > 1 {
				hold, err := strconv.ParseUint(c.Args[1], 10, 32)
				if err != nil {
					c.Err(fmt.Errorf("invalid hold: %v", err))
					return
				}
				msg.HoldMs = uint32(hold)
			}
			sh.DoCommand(c, &msg)
		}),
	}

	// DialCmd taps every key of NUMBER then holds the terminator.
	DialCmd = ishell.Cmd{
		Name:    "phone.dial",
		Aliases: []string{"pd"},
		Help:    "NUMBER",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			if len(c.Args) != 1 {
				c.Err(fmt.Errorf("number expected"))
				return
			}
			keys, err := DialKeys(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			s := sh.ShellFrom(c)
			for _, msg := range keys {
				if _, err := s.Do(msg); err != nil {
					c.Err(fmt.Errorf("inject %q: %v", msg.Key, err))
					return
				}
			}
			c.Println("OK")
		}),
	}

	// ParseCmd parses a number locally.
	ParseCmd = ishell.Cmd{
		Name:    "phone.parse",
		Aliases: []string{"pp"},
		Help:    "TEXT",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 1 {
				c.Err(fmt.Errorf("text expected"))
				return
			}
			n, err := number.Parse(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			sh.PrintMsg(c, msgs.NumberDialedFrom(c.Args[0], n))
		},
	}
)

// DialKeys converts a number into the key injections dialing it.
// Dashes are skipped as the keypad has none.
func DialKeys(text string) ([]*msgs.KeyInject, error) {
	var keys []*msgs.KeyInject
	for _, r := range strings.ReplaceAll(text, "-", "") {
		if _, ok := keypad.DefaultLayout.IndexOf(r); !ok {
			return nil, fmt.Errorf("%q is not on the keypad", r)
		}
		keys = append(keys, &msgs.KeyInject{Key: string(r)})
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("nothing to dial")
	}
	return append(keys, &msgs.KeyInject{
		Key:    string(dial.Terminator),
		HoldMs: TerminatorHoldMs,
	}), nil
}

func init() {
	sh.AddCmds(
		&StatusCmd,
		&ModeCmd,
		&ClearCmd,
		&TapCmd,
		&DialCmd,
		&ParseCmd,
	)
}
