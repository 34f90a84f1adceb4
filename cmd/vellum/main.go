// Command vellum is a small console editor over a single file, built on
// the piece-rope buffer. It reads one line at a time, dispatches a
// single-letter command, and renders a 60-byte window of the buffer
// between two separator lines after each command.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/vellumed/vellum"
)

const version = "vellum 0.1.0"

var directMode = flag.BoolP("direct-mode", "d", false, "edit the file directly, bypassing the rope")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [--direct-mode|-d] <file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	path := flag.Arg(0)

	logger := log.New()
	logger.SetLevel(log.WarnLevel)

	var target vellum.Appendable
	var closer func() error

	if *directMode {
		d, err := vellum.NewDirectBuffer(path)
		if err != nil {
			logger.WithError(err).Fatal("cannot open file")
		}
		target = d
		closer = d.Close
	} else {
		b, err := vellum.Open(path)
		if err != nil {
			logger.WithError(err).Fatal("cannot open file")
		}
		target = b
		closer = b.Close
	}
	defer closer()

	repl := &repl{target: target, insertable: asInsertable(target), logger: logger}
	reader := bufio.NewReader(os.Stdin)
	for {
		render(target)
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			break
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			continue
		}
		if !repl.handle(line) {
			break
		}
	}
	fmt.Println("bye")
}

func asInsertable(a vellum.Appendable) vellum.Insertable {
	i, _ := a.(vellum.Insertable)
	return i
}

type repl struct {
	target     vellum.Appendable
	insertable vellum.Insertable
	logger     *log.Logger
}

// handle dispatches a single command line. It returns false when the
// session should end.
func (r *repl) handle(line string) bool {
	key := line[0]
	arg := line[1:]
	switch key {
	case 't':
		fmt.Println(r.target.Tell())
	case 'f':
		r.target.ToStart()
	case 'l':
		if err := r.target.ToEnd(); err != nil {
			r.logger.WithError(err).Error("to_end failed")
		}
	case 'g':
		delta, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
		if err != nil {
			r.logger.WithField("arg", arg).Error("expected a signed integer")
			return true
		}
		r.target.Go(delta)
	case 'w':
		if err := r.target.Replace([]byte(arg)); err != nil {
			r.logger.WithError(err).Error("replace failed")
		}
	case 'i':
		if r.insertable == nil {
			r.logger.Error("insert is not supported in direct mode")
			return true
		}
		if err := r.insertable.Insert([]byte(arg)); err != nil {
			r.logger.WithError(err).Error("insert failed")
		}
	case 'd':
		if r.insertable == nil {
			r.logger.Error("erase is not supported in direct mode")
			return true
		}
		count, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
		if err != nil || count < 0 {
			r.logger.WithField("arg", arg).Error("expected an unsigned integer")
			return true
		}
		if err := r.insertable.Erase(count); err != nil {
			r.logger.WithError(err).Error("erase failed")
		}
	case 's':
		if err := r.target.Flush(); err != nil {
			r.logger.WithError(err).Error("flush failed")
		}
	case 'q':
		fmt.Println("quitting")
		return false
	default:
		r.logger.WithField("command", string(key)).Error("unknown command")
	}
	return true
}

const renderWidth = 60
const separator = "=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-"

// render shows the first 60 bytes of the buffer between two separator
// lines. Bytes outside [0x20, 0x7e] are substituted with '?' for display
// only; the underlying buffer is untouched.
func render(target vellum.Appendable) {
	content, err := target.ViewRange(0, renderWidth)
	if err != nil {
		fmt.Println(separator)
		fmt.Println(separator)
		return
	}
	display := make([]byte, len(content))
	for i, ch := range content {
		if ch < 0x20 || ch >= 0x7f {
			ch = '?'
		}
		display[i] = ch
	}
	fmt.Println(separator)
	fmt.Println(string(display))
	fmt.Println(separator)
}
