package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/studentdiary/internal/client/models"
)

const messageTimeLayout = "02 Jan 15:04"

func messageList(title string, list []models.Message) string {
	if len(list) == 0 {
		return fmt.Sprintf("%s: no messages yet.", title)
	}
	var b strings.Builder
	b.WriteString(title)
	for _, m := range list {
		fmt.Fprintf(&b, "\n[%s] %s: %s", m.CreatedAt.Local().Format(messageTimeLayout), m.SenderName(), m.Text)
	}
	return b.String()
}

// Forums lists the classroom forums open to the user.
func (a *App) Forums(ctx context.Context, _ []string) error {
	a.loading("forums")
	list, err := a.messageService.Forums(ctx)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.forums = list
	a.mu.Unlock()

	if len(list) == 0 {
		printlnFn("No forums available.")
		return nil
	}
	lines := make([]string, 0, len(list))
	for i, s := range list {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, s.Title))
	}
	printlnFn(strings.Join(lines, "\n"))
	return nil
}

func (a *App) forum(ctx context.Context, args []string, use string) (models.Subject, error) {
	a.mu.Lock()
	list := a.forums
	a.mu.Unlock()

	if list == nil {
		a.loading("forums")
		fetched, err := a.messageService.Forums(ctx)
		if err != nil {
			return models.Subject{}, err
		}
		a.mu.Lock()
		a.forums = fetched
		a.mu.Unlock()
		list = fetched
	}

	i, err := index(args, len(list), use)
	if err != nil {
		return models.Subject{}, err
	}
	return list[i], nil
}

func (a *App) Forum(ctx context.Context, args []string) error {
	subj, err := a.forum(ctx, args, "forum <forum#>")
	if err != nil {
		return err
	}
	a.loading("messages")
	list, err := a.messageService.List(ctx, subj.ID)
	if err != nil {
		return err
	}
	printlnFn(messageList(subj.Title, list))
	return nil
}

func (a *App) Post(ctx context.Context, args []string) error {
	subj, err := a.forum(ctx, args, "post <forum#>")
	if err != nil {
		return err
	}
	text, err := getSimpleText(a.reader, "Message", a.out)
	if err != nil {
		return err
	}
	m, err := a.messageService.Post(ctx, subj.ID, text)
	if err != nil {
		return err
	}
	printlnFn(messageList(subj.Title, []models.Message{*m}))
	return nil
}

func (a *App) Alumni(ctx context.Context, _ []string) error {
	a.loading("alumni forum")
	list, err := a.messageService.AlumniList(ctx)
	if err != nil {
		return err
	}
	printlnFn(messageList("Alumni forum", list))
	return nil
}

func (a *App) AlumniPost(ctx context.Context, _ []string) error {
	text, err := getSimpleText(a.reader, "Message", a.out)
	if err != nil {
		return err
	}
	m, err := a.messageService.AlumniPost(ctx, text)
	if err != nil {
		return err
	}
	printlnFn(messageList("Alumni forum", []models.Message{*m}))
	return nil
}
