package request

import "testing"

func TestUpdateInquiryRequest_HasChanges(t *testing.T) {
	cases := []struct {
		name string
		req  UpdateInquiryRequest
		want bool
	}{
		{name: "empty", req: UpdateInquiryRequest{}, want: false},
		{name: "whitespace only", req: UpdateInquiryRequest{Status: "  ", Notes: "\t"}, want: false},
		{name: "client id alone is not a change", req: UpdateInquiryRequest{ClientID: "client-2"}, want: false},
		{name: "changed_by alone is not a change", req: UpdateInquiryRequest{ChangedBy: "Admin"}, want: false},
		{name: "status", req: UpdateInquiryRequest{Status: "approved"}, want: true},
		{name: "payment status", req: UpdateInquiryRequest{PaymentStatus: "paid"}, want: true},
		{name: "total amount", req: UpdateInquiryRequest{TotalAmount: "$6000"}, want: true},
		{name: "admin notes", req: UpdateInquiryRequest{AdminNotes: "call back"}, want: true},
		{name: "notes", req: UpdateInquiryRequest{Notes: "revised scope"}, want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.req.HasChanges(); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
