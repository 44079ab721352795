package main

import (
	"bufio"
	"fmt"
	"io"
	"linked-containers/internal/commandhandler"
	"linked-containers/internal/platform"
	"linked-containers/internal/platform/helper"
	"log"
	"os"
	"strconv"
	"strings"
)

const stackSentinel = -1

var listScript = []string{
	"LIST d doubly",
	"APPEND d 1", "APPEND d 2", "APPEND d 3", "APPEND d 4", "APPEND d 5",
	"PRINT d",
	"REMOVE d 4", "REMOVE d 4",
	"PRINT d",
	"INSERT d 4", "PRINT d",
	"REMOVE d 1", "PRINT d",
	"REMOVE d 5", "PRINT d",
	"INSERT d 6", "PRINT d",
	"INSERT d 5", "PRINT d",
	"INSERT d 0", "PRINT d",
	"INSERT d 1", "PRINT d",
	"REVERSE d",
	"NODES d",

	"LIST s singly",
	"INSERT s 3", "INSERT s 1", "INSERT s 2",
	"PRINT s", "REVERSE s",
	"REMOVE s 1", "PRINT s",
	"GET s 1",

	"LIST c circular",
	"APPEND c 1", "APPEND c 2", "APPEND c 3",
	"INSERT c 0", "PRINT c",
	"REMOVE c 0", "PRINT c",
	"NODES c",
	"REVERSE c",
}

func main() {
	mode := "lists"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	switch mode {
	case "lists":
		runLists(os.Stdout)
	case "stack":
		if err := runStack(os.Stdin, os.Stdout); err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatalf("unknown mode %s, want lists or stack", mode)
	}
}

func runLists(w io.Writer) {
	handler := commandhandler.NewCommandHandler()
	for _, line := range listScript {
		out, err := handler.Execute(line)
		if err != nil {
			// Failures are logged by the handler; the script goes on.
			continue
		}
		if out != "" {
			fmt.Fprintf(w, "%-12s %s\n", line, out)
		}
	}
}

// runStack pushes integers read from r up to and including the -1 sentinel,
// then prints the stack and an independent copy of it.
func runStack(r io.Reader, w io.Writer) error {
	s := platform.NewStack[int]()
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		i, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return fmt.Errorf("runStack: %w", err)
		}
		s.Push(i)
		if i == stackSentinel {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("runStack: %w", err)
	}
	helper.Log.Debugf("read %d values", s.Count())

	fmt.Fprintln(w, "s:")
	printStack(w, s)
	s2 := s.Clone()
	fmt.Fprintln(w, "s2:")
	printStack(w, s2)
	return nil
}

func printStack(w io.Writer, s *platform.Stack[int]) {
	var sb strings.Builder
	sb.WriteString("stack:\n")
	first := true
	for v := range s.All() {
		sb.WriteString(strconv.Itoa(v))
		sb.WriteString("\n")
		if first {
			sb.WriteString("---\n")
			first = false
		}
	}
	fmt.Fprint(w, sb.String())
}
