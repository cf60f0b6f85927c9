package pages

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"bidmatch/internal/app/ui/components"
)

const (
	analyticsTitle       = "Análises"
	analyticsDescription = "Acompanhe o desempenho das suas participações em licitações. " +
		"Esta área está em construção: os indicadores abaixo serão calculados a partir do histórico de propostas."
)

// InfoCard is a static label and description pair
type InfoCard struct {
	Label       string
	Description string
}

var analyticsCards = [...]InfoCard{
	{Label: "Taxa de Sucesso", Description: "Percentual de licitações em que a proposta foi vencedora."},
	{Label: "Valor Adjudicado", Description: "Soma dos contratos obtidos no período selecionado."},
	{Label: "Editais Avaliados", Description: "Quantidade de editais analisados pelo motor de compatibilidade."},
	{Label: "Compatibilidade Média", Description: "Nota média de aderência entre o perfil da empresa e os editais."},
	{Label: "Órgãos Frequentes", Description: "Principais órgãos públicos com editais compatíveis."},
	{Label: "Tendências", Description: "Evolução mensal do volume de oportunidades encontradas."},
}

// Analytics is the placeholder analytics page. It takes no input and emits nothing.
type Analytics struct{}

// NewAnalytics creates the analytics placeholder page
func NewAnalytics() Analytics {
	return Analytics{}
}

// Title returns the page heading
func (Analytics) Title() string {
	return analyticsTitle
}

// Cards returns the informational cards in display order
func (Analytics) Cards() []InfoCard {
	out := make([]InfoCard, len(analyticsCards))
	copy(out, analyticsCards[:])

	return out
}

// Update ignores every message
func (Analytics) Update(tea.Msg) tea.Cmd {
	return nil
}

// View renders the heading, the description and the card grid
func (a Analytics) View() string {
	cards := a.Cards()
	cells := make([]string, len(cards))

	for i, c := range cards {
		cells[i] = components.RenderCard(c.Label, c.Description, components.CardWidth)
	}

	gridWidth := components.CardColumns*components.CardWidth + (components.CardColumns-1)*components.CardGap

	return lipgloss.JoinVertical(
		lipgloss.Left,
		components.TitleStyle.Render(analyticsTitle),
		components.BodyStyle.Width(gridWidth).Render(analyticsDescription),
		"",
		components.RenderGrid(cells, components.CardColumns, components.CardGap),
	)
}
