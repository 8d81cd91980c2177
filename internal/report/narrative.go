package report

import (
	"fmt"
	"strings"

	"github.com/fluxo-dev/fluxo/internal/model"
)

// Narrative produces the short markdown analysis shown above the charts:
// an overview of totals, the top expense destinations and a one-line
// recommendation based on the net balance.
func Narrative(txns []model.Transaction) string {
	s := Summarize(txns)
	if s.TotalSpent.IsZero() {
		return "Nenhum gasto registrado no período selecionado. Excelente controle financeiro!"
	}

	var b strings.Builder
	b.WriteString("### Análise Rápida\n\n")
	fmt.Fprintf(&b, "**Visão Geral:** No período selecionado, você gastou R$ %s e recebeu R$ %s, resultando em um saldo líquido de **R$ %s**.\n\n",
		s.TotalSpent.StringFixed(2), s.TotalReceived.StringFixed(2), s.Net.StringFixed(2))

	top := TopPayees(txns, 3)
	switch len(top) {
	case 0:
		b.WriteString("**Principais Gastos:** Não há gastos suficientes para exibir uma análise detalhada.\n\n")
	case 1:
		fmt.Fprintf(&b, "**Principal Gasto:** O seu maior gasto foi com **%s**.\n\n", top[0].Payee)
	case 2:
		fmt.Fprintf(&b, "**Principais Gastos:** Os seus maiores gastos foram com **%s** e **%s**.\n\n",
			top[0].Payee, top[1].Payee)
	default:
		fmt.Fprintf(&b, "**Principais Gastos:** Os seus maiores gastos foram com **%s**, **%s** e **%s**.\n\n",
			top[0].Payee, top[1].Payee, top[2].Payee)
	}

	if s.Net.IsNegative() {
		b.WriteString("**Recomendação:** Seu saldo líquido está negativo. Revise os gastos nos estabelecimentos principais para encontrar oportunidades de economia.")
	} else {
		b.WriteString("**Recomendação:** Seu saldo líquido está positivo! Continue assim para alcançar seus objetivos financeiros.")
	}
	return b.String()
}
