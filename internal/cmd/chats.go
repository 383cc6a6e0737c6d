package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli"

	"klassenbote/internal/config"
	"klassenbote/internal/post"
)

var ChatsCmd = cli.Command{
	Name:  "chats",
	Usage: "Lists the group chats the bot can see, to pick the target identifier",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:   "token",
			Usage:  "Telegram bot token",
			EnvVar: "TELEGRAM_BOT_TOKEN",
		},
	},
	Action: listChats,
}

func listChats(c *cli.Context) error {
	cfg := config.Load()

	token := stringValue(c, "token")
	if token == "" {
		token = cfg.Telegram.BotToken
	}
	if token == "" {
		return fmt.Errorf("no bot token configured")
	}

	chats, err := post.NewTelegram(token).ListChats(context.Background())
	if err != nil {
		return err
	}
	if len(chats) == 0 {
		info("No group chats found; send a message to the bot's group first.")
		return nil
	}

	for i, chat := range chats {
		fmt.Printf("[%d] %s\n", i+1, chat.Title)
		fmt.Printf("    ID: %d\n", chat.ID)
	}
	fmt.Println("\nCopy the ID of the class group into TELEGRAM_CHAT_ID.")
	return nil
}
