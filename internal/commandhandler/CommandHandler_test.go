package commandhandler

import (
	platformerror "linked-containers/internal/platform/error"
	"testing"

	"github.com/stretchr/testify/require"
)

type step struct {
	line string
	want string
}

func run(t *testing.T, h CommandHandler, steps []step) {
	t.Helper()
	for _, s := range steps {
		got, err := h.Execute(s.line)
		require.NoError(t, err, s.line)
		require.Equal(t, s.want, got, s.line)
	}
}

func TestExecute_DoublyScenario(t *testing.T) {
	h := NewCommandHandler()
	run(t, h, []step{
		{"LIST d doubly", ""},
		{"append d 1", ""}, {"append d 2", ""}, {"append d 3", ""}, {"append d 4", ""}, {"append d 5", ""},
		{"PRINT d", "1 2 3 4 5"},
		{"REMOVE d 4", ResultRemoved},
		{"REMOVE d 4", ResultNotFound},
		{"PRINT d", "1 2 3 5"},
		{"INSERT d 4", ""},
		{"PRINT d", "1 2 3 4 5"},
		{"REVERSE d", "5 4 3 2 1"},
		{"NODES d", "[ |1|2] [1|2|3] [2|3|4] [3|4|5] [4|5| ]"},
		{"GET d 0", "1"},
		{"EMPTY d", "false"},
	})
}

func TestExecute_Stack(t *testing.T) {
	h := NewCommandHandler()
	run(t, h, []step{
		{"STACK s", ""},
		{"EMPTY s", "true"},
		{"PUSH s 1", ""}, {"PUSH s 2", ""}, {"PUSH s 3", ""},
		{"PRINT s", "3 2 1"},
		{"COPY c s", ""},
		{"POP c", "3"},
		{"PUSH c 2.5", ""},
		{"PRINT c", "2.5 2 1"},
		{"PRINT s", "3 2 1"},
	})

	_, err := h.Execute("POP empty")
	require.ErrorIs(t, err, platformerror.ErrContainerNotFound)

	run(t, h, []step{{"STACK e", ""}})
	_, err = h.Execute("POP e")
	require.ErrorIs(t, err, platformerror.ErrEmptyContainer)
}

func TestExecute_Errors(t *testing.T) {
	h := NewCommandHandler()
	run(t, h, []step{
		{"LIST c circular", ""},
		{"APPEND c 1", ""},
	})

	tests := []struct {
		line string
		want error
	}{
		{"", platformerror.ErrUnknownCommand},
		{"SORT c", platformerror.ErrUnknownCommand},
		{"LIST x tree", platformerror.ErrInvalidArgument},
		{"LIST c singly", platformerror.ErrContainerExists},
		{"STACK c", platformerror.ErrContainerExists},
		{"APPEND c", platformerror.ErrInvalidArgument},
		{"APPEND c one", platformerror.ErrInvalidArgument},
		{"APPEND nope 1", platformerror.ErrContainerNotFound},
		{"PUSH c 1", platformerror.ErrContainerNotFound},
		{"REVERSE c", platformerror.ErrUnsupportedOperation},
		{"GET c 3", platformerror.ErrIndexOutOfRange},
		{"GET c x", platformerror.ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := h.Execute(tt.line)
			require.ErrorIs(t, err, tt.want)
		})
	}

	run(t, h, []step{{"PRINT c", "1"}})
}
