package entities

import "testing"

func TestCategorizeDescription(t *testing.T) {
	cases := []struct {
		description string
		want        EntryCategory
	}{
		{"PIX RECEBIDO 123E2E", EntryCategoryPix},
		{"Pagamento boleto condominio", EntryCategoryBoleto},
		{"LIQ BLOQUETO COBRANCA", EntryCategoryBoleto},
		{"TED RECEBIDA UNIDADE 101", EntryCategoryTransferencia},
		{"TRANSF ENTRE CONTAS", EntryCategoryTransferencia},
		{"TARIFA MANUTENCAO CONTA", EntryCategoryTarifa},
		{"CESTA SERVICOS", EntryCategoryTarifa},
		{"FOLHA PAGAMENTO ZELADOR", EntryCategoryFolha},
		{"SALARIO PORTEIRO", EntryCategoryFolha},
		{"DEPOSITO EM DINHEIRO", EntryCategoryOutros},
		{"", EntryCategoryOutros},
	}
	for _, c := range cases {
		if got := CategorizeDescription(c.description); got != c.want {
			t.Fatalf("CategorizeDescription(%q) = %s, want %s", c.description, got, c.want)
		}
	}
}

func TestCategorizeDescription_FirstMatchWins(t *testing.T) {
	// Pix outranks boleto when both keywords appear.
	if got := CategorizeDescription("PIX QR BOLETO"); got != EntryCategoryPix {
		t.Fatalf("got %s, want pix", got)
	}
}
