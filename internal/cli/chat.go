package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/boltnotes/bolt-notes/internal/chat"
	"github.com/boltnotes/bolt-notes/internal/completion"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the assistant interactively",
		Long:  "Interactive assistant session. Ask for checklists, routines, or guides; type exit to quit. The transcript is not saved.",
		Run:   runChat,
	}

	RootCmd.AddCommand(cmd)
}

func runChat(cmd *cobra.Command, args []string) {
	repo, gw, err := openRepo()
	if err != nil {
		exitErr("open store", err)
	}
	defer gw.Close()

	session := chat.NewSession(completion.NewFromEnv(), repo)
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println(`Ask for checklists, routines, or guides. Type "exit" to quit.`)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if text == "exit" || text == "quit" {
			break
		}

		reply := session.Send(cmd.Context(), text)
		fmt.Println(reply.Content)
	}
}
