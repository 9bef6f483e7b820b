package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iamasit07/connect4/internal/domain"
	"github.com/iamasit07/connect4/internal/service/game"
)

const (
	piece      = "●"
	emptyColor = "grey"
)

// PlayerColors are offered to human players. Red is kept for the bot.
var PlayerColors = []string{"green", "yellow", "blue", "magenta", "cyan", "white"}

var ansiColors = map[string]lipgloss.Color{
	"red":     lipgloss.Color("1"),
	"green":   lipgloss.Color("2"),
	"yellow":  lipgloss.Color("3"),
	"blue":    lipgloss.Color("4"),
	"magenta": lipgloss.Color("5"),
	"cyan":    lipgloss.Color("6"),
	"white":   lipgloss.Color("7"),
	"grey":    lipgloss.Color("8"),
}

var withdrawSymbols = []string{"x", "q"}

const instructions = `Players take turns dropping a disc into one of the columns. The disc falls
to the lowest free cell. The first player to line up %d discs in a row, a
column or a diagonal wins. A full board with no line is a tie.
Enter the column number on your turn, or x/q to give up (-1 point).`

// Console talks to the players over a line-oriented terminal.
type Console struct {
	in        *bufio.Reader
	out       io.Writer
	renderer  *lipgloss.Renderer
	title     lipgloss.Style
	bold      lipgloss.Style
	warning   lipgloss.Style
	winLength int
}

func New(in io.Reader, out io.Writer, winLength int) *Console {
	r := lipgloss.NewRenderer(out)
	return &Console{
		in:        bufio.NewReader(in),
		out:       out,
		renderer:  r,
		title:     r.NewStyle().Bold(true).Foreground(ansiColors["cyan"]),
		bold:      r.NewStyle().Bold(true),
		warning:   r.NewStyle().Foreground(ansiColors["yellow"]),
		winLength: winLength,
	}
}

func (c *Console) Instructions() error {
	_, err := fmt.Fprintf(c.out, "%s\n%s\n\n", c.title.Render("Instructions"), fmt.Sprintf(instructions, c.winLength))
	return err
}

// AskMode returns 1 for a game against the bot, 2 for two humans.
func (c *Console) AskMode() (int, error) {
	for {
		answer, err := c.prompt("Choose mode one or two players (1/2): ")
		if err != nil {
			return 0, err
		}
		switch answer {
		case "1":
			return 1, nil
		case "2":
			return 2, nil
		}
		if err := c.println(c.warning.Render("Please answer 1 or 2.")); err != nil {
			return 0, err
		}
	}
}

func (c *Console) AskName(order string) (string, error) {
	for {
		name, err := c.prompt(fmt.Sprintf("Enter name for the %s player: ", order))
		if err != nil {
			return "", err
		}
		if name != "" {
			return name, nil
		}
		if err := c.println(c.warning.Render("Name must not be empty.")); err != nil {
			return "", err
		}
	}
}

// AskColor keeps asking until the answer is one of PlayerColors other than
// exclude.
func (c *Console) AskColor(order, exclude string) (string, error) {
	options := make([]string, 0, len(PlayerColors))
	for _, name := range PlayerColors {
		if name != exclude {
			options = append(options, c.colored(name, name))
		}
	}
	if err := c.println(strings.Join(options, " ")); err != nil {
		return "", err
	}

	for {
		color, err := c.prompt(fmt.Sprintf("Enter color for the %s player: ", order))
		if err != nil {
			return "", err
		}
		color = strings.ToLower(color)
		if color != exclude && slices.Contains(PlayerColors, color) {
			return color, nil
		}
		if err := c.println(c.warning.Render("Wrong color")); err != nil {
			return "", err
		}
	}
}

// ReadColumn implements game.ColumnReader. Columns are entered 1-based.
func (c *Console) ReadColumn(ctx context.Context, player string) (int, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}

	answer, err := c.prompt("Enter column number: ")
	if err != nil {
		return 0, false, err
	}
	if slices.Contains(withdrawSymbols, strings.ToLower(answer)) {
		return 0, true, nil
	}

	n, err := strconv.Atoi(answer)
	if err != nil {
		if err := c.println(c.warning.Render(fmt.Sprintf("%q is not a column number.", answer))); err != nil {
			return 0, false, err
		}
		return -1, false, nil
	}
	return n - 1, false, nil
}

func (c *Console) AskReplay() (bool, error) {
	answer, err := c.prompt("Do you want to repeat? (y/n): ")
	if err != nil {
		return false, err
	}
	return strings.ToLower(answer) == "y", nil
}

// ShowBoard draws the grid top row first, then the column numbers.
func (c *Console) ShowBoard(board *domain.Board, palette map[domain.PlayerID]string) error {
	var sb strings.Builder
	for row := 0; row < board.Height(); row++ {
		cells := make([]string, board.Width())
		for col := range cells {
			color := emptyColor
			if code := board.Cell(row, col); code != domain.Empty {
				color = palette[code]
			}
			cells[col] = c.colored(piece, color)
		}
		sb.WriteString(strings.Join(cells, " "))
		sb.WriteString("\n")
	}

	numbers := make([]string, board.Width())
	for col := range numbers {
		numbers[col] = strconv.Itoa((col + 1) % 10)
	}
	sb.WriteString(strings.Join(numbers, " "))
	sb.WriteString("\n")

	_, err := fmt.Fprintln(c.out, sb.String())
	return err
}

func (c *Console) ShowTurn(p game.Player) error {
	return c.println(c.colored(p.Name(), p.Color()) + " turn.")
}

func (c *Console) IllegalMove(game.Player) error {
	return c.println(c.warning.Render("Wrong move! Repeat please."))
}

func (c *Console) ShowResult(result game.RoundResult) error {
	switch result.Outcome {
	case domain.OutcomeWin:
		return c.println(c.bold.Render(result.Player) + " win!")
	case domain.OutcomeWithdrawn:
		return c.println(c.bold.Render(result.Player) + " gave up!")
	case domain.OutcomeDraw:
		return c.println("Tie!")
	}
	return nil
}

func (c *Console) ShowStatistics(scores []game.Score) error {
	var sb strings.Builder
	sb.WriteString(c.title.Render("Statistic:"))
	sb.WriteString("\n")
	for _, s := range scores {
		fmt.Fprintf(&sb, "\t%s - %d\n", s.Name, s.Points)
	}
	_, err := fmt.Fprint(c.out, sb.String())
	return err
}

func (c *Console) colored(text, color string) string {
	fg, ok := ansiColors[color]
	if !ok {
		return text
	}
	return c.renderer.NewStyle().Foreground(fg).Render(text)
}

func (c *Console) prompt(text string) (string, error) {
	if _, err := fmt.Fprint(c.out, text); err != nil {
		return "", err
	}
	line, err := c.in.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *Console) println(text string) error {
	_, err := fmt.Fprintln(c.out, text)
	return err
}
