package render

import (
	"bytes"
	"fmt"
	"html/template"
)

// previewTemplate mirrors the print layout: company header with tagline,
// INVOICE banner with number and date, recipient and description blocks,
// itemized table and the three totals rows.
const previewTemplate = `<div style='font-family: Arial; color: #222;'>
<table width='100%'><tr>
<td><h2 style='color:#20646a;margin-bottom:0'>{{.CompanyName}}</h2>
<span style='font-size:11px;font-style:italic;'>{{.Tagline}}</span><br>
<span style='font-size:13px'>{{.CompanyAddress}}<br>{{.CompanyContact}}</span></td>
<td align='right'><span style='font-size:32px;color:#008080;font-weight:bold;'>INVOICE</span><br><br>
<b>INVOICE:</b> {{.Number}}<br>
<b>DATE:</b> {{.Date}}
</td></tr></table>
<br>
<table width='100%'><tr>
<td valign='top'><b>TO:</b><br>{{.ClientName}}{{if .ClientAddress}}<br>{{.ClientAddress}}{{end}}{{if .ClientNumber}}<br>{{.ClientNumber}}{{end}}<br>{{.Email}}</td>
<td valign='top'><b>FOR:</b><br>{{.Description}}</td>
</tr></table>
<br>
<table width='100%' border='1' cellspacing='0' cellpadding='4' style='border-collapse:collapse;'>
<tr style='background:#e6f2f2;'><th align='left'>DESCRIPTION</th><th>QTY</th><th>RATE</th><th>AMOUNT</th></tr>
{{range .Rows}}<tr><td>{{.Description}}</td><td align='center'>{{.Qty}}</td><td align='right'>{{.Rate}}</td><td align='right'>{{.Amount}}</td></tr>
{{end}}<tr><td colspan='3' align='right'><b>Subtotal</b></td><td align='right'>{{.Subtotal}}</td></tr>
<tr><td colspan='3' align='right'><b>Tax</b></td><td align='right'>{{.Tax}}</td></tr>
<tr><td colspan='3' align='right'><b>Total</b></td><td align='right'>{{.Total}}</td></tr>
</table>
<br><br>
<b>THANK YOU FOR YOUR BUSINESS!</b>
</div>
`

var previewTpl = template.Must(template.New("preview").Parse(previewTemplate))

// Preview renders the invoice document as HTML markup.
func Preview(doc Document) (string, error) {
	var buf bytes.Buffer
	if err := previewTpl.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("render preview: %w", err)
	}
	return buf.String(), nil
}
