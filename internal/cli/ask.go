package cli

import (
	"fmt"
	"strings"

	"github.com/boltnotes/bolt-notes/internal/chat"
	"github.com/boltnotes/bolt-notes/internal/completion"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "ask [message]",
		Short: "Send one message to the assistant",
		Long:  "Send one message to the assistant. Messages that ask for a checklist produce a saved note; anything else gets a plain reply.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runAsk,
	}

	RootCmd.AddCommand(cmd)
}

func runAsk(cmd *cobra.Command, args []string) {
	repo, gw, err := openRepo()
	if err != nil {
		exitErr("open store", err)
	}
	defer gw.Close()

	session := chat.NewSession(completion.NewFromEnv(), repo)
	reply := session.Send(cmd.Context(), strings.Join(args, " "))

	fmt.Println(reply.Content)
	if reply.Note != nil {
		fmt.Printf("note id: %s\n", reply.Note.ID)
	}
}
