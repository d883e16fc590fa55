package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/worklog/internal/contract"
	"github.com/alexanderramin/worklog/internal/domain"
)

// RenderHTML renders a monthly summary as a standalone HTML document: the
// Day/Since/Till/Hours table with worked/not-worked row shading, a grand
// total line, and the client-side toggle-edit and copy-table affordances.
func RenderHTML(s *contract.MonthlySummary) string {
	var rows strings.Builder
	for _, d := range s.Days {
		rowClass := "not-worked"
		var since, till, hours string
		if d.Worked() {
			rowClass = "worked"
			since = domain.FormatClock(d.Since)
			till = domain.FormatClock(d.Till)
			hours = fmt.Sprintf("%.2f", d.Hours)
		}
		fmt.Fprintf(&rows, `
      <tr class="%s">
        <td contenteditable="false">%d</td>
        <td contenteditable="false">%s</td>
        <td contenteditable="false">%s</td>
        <td contenteditable="false">%s</td>
      </tr>`, rowClass, d.Day, since, till, hours)
	}

	return fmt.Sprintf(htmlDocument, s.Month, s.Year, rows.String(), s.TotalHours)
}

// WriteHTMLFile writes the rendered summary to work-summary-YYYY-M.html
// under dir (os.TempDir() when dir is empty) and returns the file path.
func WriteHTMLFile(dir string, s *contract.MonthlySummary) (string, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, fmt.Sprintf("work-summary-%d-%d.html", s.Year, s.Month))
	if err := os.WriteFile(path, []byte(RenderHTML(s)), 0644); err != nil {
		return "", fmt.Errorf("writing summary file: %w", err)
	}
	return path, nil
}

const htmlDocument = `<html>
  <head>
    <title>Work Summary</title>
    <style>
      body {
        font-family: Arial, sans-serif;
        background-color: #f8f8f8;
        margin: 0;
        padding: 0;
      }
      h1 {
        text-align: center;
        margin-top: 20px;
      }
      table {
        margin: 20px auto;
        border-collapse: collapse;
        width: 80%%;
      }
      th, td {
        border: 1px solid #ccc;
        padding: 12px;
        text-align: center;
      }
      .worked {
        background-color: #dfffe0;
      }
      .not-worked {
        background-color: #ffd9d9;
      }
      button {
        display: inline-block;
        margin: 10px auto;
        margin-right: 10px;
        padding: 10px 20px;
        background-color: #cddffa;
        border: none;
        cursor: pointer;
        font-size: 16px;
      }
      .button-container {
        text-align: center;
      }
    </style>
  </head>
  <body>
    <h1>Work Summary %d/%d</h1>
    <div class="button-container">
      <button onclick="toggleEditMode()">Toggle Edit Mode</button>
      <button onclick="copyTableToClipboard()">Copy Table</button>
    </div>
    <table>
      <tr>
        <th>Day</th>
        <th>Since</th>
        <th>Till</th>
        <th>Hours</th>
      </tr>%s
    </table>
    <p style="text-align: center;"><strong>Total Hours: %.2f</strong></p>
    <script>
      function toggleEditMode() {
        const cells = document.querySelectorAll("table td");
        cells.forEach(cell => {
          cell.contentEditable = cell.contentEditable === "true" ? "false" : "true";
        });
      }

      function copyTableToClipboard() {
        // Skip header row
        const tableRows = Array.from(document.querySelectorAll("table tr")).slice(1);
        const tableContent = tableRows
          .map(row => Array.from(row.querySelectorAll("th, td"))
            .map(cell => cell.innerText)
            .join("\t"))
          .join("\n");
        const el = document.createElement("textarea");
        el.value = tableContent;
        document.body.appendChild(el);
        el.select();
        document.execCommand("copy");
        document.body.removeChild(el);
        alert("Table content copied to clipboard.");
      }
    </script>
  </body>
</html>
`
