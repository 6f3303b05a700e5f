package invoice

import (
	"bytes"
	"html/template"
)

var invoiceTemplate = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"money": FormatMoney,
	"percent": func(bp int) string {
		return FormatMoney(int64(bp), "%")
	},
}).Parse(invoiceHTML))

// RenderHTML produces a self-contained printable document. All values are
// escaped by html/template.
func (inv *Invoice) RenderHTML() ([]byte, error) {
	var buf bytes.Buffer
	if err := invoiceTemplate.Execute(&buf, inv); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const invoiceHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Invoice {{.Number}}</title>
<style>
body{font-family:Helvetica,Arial,sans-serif;margin:40px;color:#222}
h1{font-size:22px;margin-bottom:4px}
table{width:100%;border-collapse:collapse;margin-top:24px}
td,th{padding:6px 8px;border-bottom:1px solid #ddd;text-align:left}
td.amount,th.amount{text-align:right}
tfoot td{border:none}
.meta{color:#666;font-size:13px}
@media print{body{margin:0}}
</style>
</head>
<body>
<h1>{{.SellerName}}</h1>
<p class="meta">Invoice {{.Number}} &middot; issued {{.IssuedAt.Format "2006-01-02"}} &middot; visit {{.VisitDate.Format "2006-01-02 15:04"}}</p>
<p><strong>Billed to:</strong> {{.CustomerName}}{{if .CustomerEmail}} &lt;{{.CustomerEmail}}&gt;{{end}}</p>
<table>
<thead><tr><th>Service</th><th class="amount">Amount</th></tr></thead>
<tbody>
{{- range .Lines}}
<tr><td>{{.Description}}</td><td class="amount">{{money .AmountCents $.Currency}}</td></tr>
{{- end}}
<tr><td><em>Subtotal</em></td><td class="amount">{{money .SubtotalCents .Currency}}</td></tr>
{{- with .Discount}}
<tr><td>{{.Description}}</td><td class="amount">{{money .AmountCents $.Currency}}</td></tr>
{{- end}}
{{- with .GiftCard}}
<tr><td>{{.Description}}</td><td class="amount">{{money .AmountCents $.Currency}}</td></tr>
{{- end}}
</tbody>
<tfoot>
<tr><td>Total excl. VAT</td><td class="amount">{{money .TotalHTCents .Currency}}</td></tr>
<tr><td>VAT ({{percent .VATRateBP}})</td><td class="amount">{{money .VATCents .Currency}}</td></tr>
<tr><td><strong>Total paid</strong></td><td class="amount"><strong>{{money .TotalTTCCents .Currency}}</strong></td></tr>
</tfoot>
</table>
<p class="meta">Payment: {{.PaymentMethod}} ({{.PaymentStatus}})</p>
</body>
</html>
`
