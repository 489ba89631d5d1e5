package entities

import "testing"

func TestMapGatewayStatus(t *testing.T) {
	cases := []struct {
		gateway string
		want    PaymentStatus
	}{
		{"pending", PaymentStatusPendente},
		{"approved", PaymentStatusAprovado},
		{"authorized", PaymentStatusAprovado},
		{"in_process", PaymentStatusProcessando},
		{"in_mediation", PaymentStatusProcessando},
		{"rejected", PaymentStatusRejeitado},
		{"cancelled", PaymentStatusCancelado},
		{"refunded", PaymentStatusEstornado},
		{"charged_back", PaymentStatusEstornado},
		{"something_new", PaymentStatusPendente},
		{"", PaymentStatusPendente},
	}
	for _, c := range cases {
		if got := MapGatewayStatus(c.gateway); got != c.want {
			t.Fatalf("MapGatewayStatus(%q) = %s, want %s", c.gateway, got, c.want)
		}
	}
}

func TestPaymentStatus_IsTerminal(t *testing.T) {
	terminal := map[PaymentStatus]bool{
		PaymentStatusPendente:    false,
		PaymentStatusProcessando: false,
		PaymentStatusAprovado:    true,
		PaymentStatusRejeitado:   true,
		PaymentStatusCancelado:   true,
		PaymentStatusEstornado:   true,
	}
	for status, want := range terminal {
		if got := status.IsTerminal(); got != want {
			t.Fatalf("IsTerminal(%s) = %v, want %v", status, got, want)
		}
	}
}
