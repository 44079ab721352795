package commandhandler

import (
	"fmt"
	"linked-containers/internal/platform"
	platformerror "linked-containers/internal/platform/error"
	"linked-containers/internal/platform/helper"
	"strconv"
	"strings"
)

const (
	CommandList    = "LIST"
	CommandStack   = "STACK"
	CommandAppend  = "APPEND"
	CommandInsert  = "INSERT"
	CommandRemove  = "REMOVE"
	CommandPrint   = "PRINT"
	CommandReverse = "REVERSE"
	CommandNodes   = "NODES"
	CommandGet     = "GET"
	CommandPush    = "PUSH"
	CommandPop     = "POP"
	CommandCopy    = "COPY"
	CommandEmpty   = "EMPTY"
)

const (
	ResultRemoved  = "removed"
	ResultNotFound = "not found"
)

// CommandHandler executes one line command against the containers it holds.
type CommandHandler interface {
	Execute(line string) (string, error)
}

type commandHandler struct {
	lists  map[string]*platform.LinkedList[float64]
	stacks map[string]*platform.Stack[float64]
}

// NewCommandHandler returns a handler with no containers. It is not safe for concurrent use.
func NewCommandHandler() CommandHandler {
	return &commandHandler{
		lists:  make(map[string]*platform.LinkedList[float64]),
		stacks: make(map[string]*platform.Stack[float64]),
	}
}

func (h *commandHandler) Execute(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", platformerror.NewStackTraceError("empty command", platformerror.UnknownCommandErrorCode)
	}
	helper.Log.Debugf("Executing command: %s", line)

	result, err := h.execute(strings.ToUpper(fields[0]), fields[1:])
	if err != nil {
		helper.Log.Errorf("Error executing command %q: %s", line, firstLine(err))
	}
	return result, err
}

func (h *commandHandler) execute(command string, args []string) (string, error) {
	switch command {
	case CommandList:
		if err := arity(command, args, 2); err != nil {
			return "", err
		}
		topology, ok := platform.ParseTopology(args[1])
		if !ok {
			return "", platformerror.NewStackTraceError(fmt.Sprintf("unknown topology %s", args[1]), platformerror.InvalidArgumentErrorCode)
		}
		if err := h.checkFree(args[0]); err != nil {
			return "", err
		}
		h.lists[args[0]] = platform.NewScalarList[float64](topology)
		return "", nil
	case CommandStack:
		if err := arity(command, args, 1); err != nil {
			return "", err
		}
		if err := h.checkFree(args[0]); err != nil {
			return "", err
		}
		h.stacks[args[0]] = platform.NewStack[float64]()
		return "", nil
	case CommandAppend, CommandInsert, CommandRemove:
		if err := arity(command, args, 2); err != nil {
			return "", err
		}
		l, err := h.list(args[0])
		if err != nil {
			return "", err
		}
		v, err := parseValue(args[1])
		if err != nil {
			return "", err
		}
		switch command {
		case CommandAppend:
			l.Append(v)
			return "", nil
		case CommandInsert:
			return "", l.Insert(v)
		default:
			if l.Remove(v) {
				return ResultRemoved, nil
			}
			return ResultNotFound, nil
		}
	case CommandPrint:
		if err := arity(command, args, 1); err != nil {
			return "", err
		}
		if s, ok := h.stacks[args[0]]; ok {
			return s.String(), nil
		}
		l, err := h.list(args[0])
		if err != nil {
			return "", err
		}
		return l.String(), nil
	case CommandReverse:
		if err := arity(command, args, 1); err != nil {
			return "", err
		}
		l, err := h.list(args[0])
		if err != nil {
			return "", err
		}
		seq, err := l.Backward()
		if err != nil {
			return "", err
		}
		return helper.Join(seq, " "), nil
	case CommandNodes:
		if err := arity(command, args, 1); err != nil {
			return "", err
		}
		l, err := h.list(args[0])
		if err != nil {
			return "", err
		}
		return helper.Join(l.Links(), " "), nil
	case CommandGet:
		if err := arity(command, args, 2); err != nil {
			return "", err
		}
		l, err := h.list(args[0])
		if err != nil {
			return "", err
		}
		idx, err := strconv.Atoi(args[1])
		if err != nil {
			return "", platformerror.NewStackTraceError(fmt.Sprintf("invalid index %s", args[1]), platformerror.InvalidArgumentErrorCode)
		}
		v, err := l.Get(idx)
		if err != nil {
			return "", err
		}
		return formatValue(v), nil
	case CommandPush:
		if err := arity(command, args, 2); err != nil {
			return "", err
		}
		s, err := h.stack(args[0])
		if err != nil {
			return "", err
		}
		v, err := parseValue(args[1])
		if err != nil {
			return "", err
		}
		s.Push(v)
		return "", nil
	case CommandPop:
		if err := arity(command, args, 1); err != nil {
			return "", err
		}
		s, err := h.stack(args[0])
		if err != nil {
			return "", err
		}
		v, err := s.Pop()
		if err != nil {
			return "", err
		}
		return formatValue(v), nil
	case CommandCopy:
		if err := arity(command, args, 2); err != nil {
			return "", err
		}
		src, err := h.stack(args[1])
		if err != nil {
			return "", err
		}
		if err := h.checkFree(args[0]); err != nil {
			return "", err
		}
		h.stacks[args[0]] = src.Clone()
		return "", nil
	case CommandEmpty:
		if err := arity(command, args, 1); err != nil {
			return "", err
		}
		if s, ok := h.stacks[args[0]]; ok {
			return strconv.FormatBool(s.IsEmpty()), nil
		}
		l, err := h.list(args[0])
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(l.IsEmpty()), nil
	default:
		return "", platformerror.NewStackTraceError(fmt.Sprintf("Unknown command %s", command), platformerror.UnknownCommandErrorCode)
	}
}

func (h *commandHandler) list(name string) (*platform.LinkedList[float64], error) {
	l, ok := h.lists[name]
	if !ok {
		return nil, platformerror.NewStackTraceError(fmt.Sprintf("no list named %s", name), platformerror.ContainerNotFoundErrorCode)
	}
	return l, nil
}

func (h *commandHandler) stack(name string) (*platform.Stack[float64], error) {
	s, ok := h.stacks[name]
	if !ok {
		return nil, platformerror.NewStackTraceError(fmt.Sprintf("no stack named %s", name), platformerror.ContainerNotFoundErrorCode)
	}
	return s, nil
}

func (h *commandHandler) checkFree(name string) error {
	_, isList := h.lists[name]
	_, isStack := h.stacks[name]
	if isList || isStack {
		return platformerror.NewStackTraceError(fmt.Sprintf("container %s already exists", name), platformerror.ContainerExistsErrorCode)
	}
	return nil
}

func arity(command string, args []string, want int) error {
	if len(args) != want {
		return platformerror.NewStackTraceError(fmt.Sprintf("%s takes %d arguments, %d given", command, want, len(args)), platformerror.InvalidArgumentErrorCode)
	}
	return nil
}

func parseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, platformerror.NewStackTraceError(fmt.Sprintf("invalid value %s", s), platformerror.InvalidArgumentErrorCode)
	}
	return v, nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// firstLine drops the stack trace from errors that carry one.
func firstLine(err error) string {
	msg, _, _ := strings.Cut(err.Error(), "\n")
	return msg
}
