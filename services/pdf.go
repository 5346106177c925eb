package services

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strconv"
	"time"

	"mkh-consultation-backend/models"
	"mkh-consultation-backend/utils"

	"github.com/go-pdf/fpdf"
)

// Layout constants for the A4 portrait report, all in millimeters.
const (
	pageMargin      = 20.0
	lineHeight      = 6.0
	imageCellHeight = 80.0
	imageCellGap    = 10.0
	footerHeight    = 15.0
)

const reportDisclaimer = "This report is based on the information provided in your consultation form " +
	"and offers general color and care guidance only. Final treatment choices are confirmed with your " +
	"stylist in person, where hair condition and history can be assessed directly. Results and " +
	"maintenance intervals vary between individuals."

// reportCanvas owns the page cursor and enforces the bottom-margin rule in
// one place instead of at every call site.
type reportCanvas struct {
	pdf    *fpdf.Fpdf
	y      float64
	width  float64
	height float64
}

func newReportCanvas(pdf *fpdf.Fpdf) *reportCanvas {
	w, h := pdf.GetPageSize()
	c := &reportCanvas{pdf: pdf, width: w, height: h}
	c.startPage()
	return c
}

func (c *reportCanvas) contentWidth() float64 {
	return c.width - 2*pageMargin
}

// startPage opens a fresh page, repaints the black background and resets the cursor.
func (c *reportCanvas) startPage() {
	c.pdf.AddPage()
	c.pdf.SetFillColor(0, 0, 0)
	c.pdf.Rect(0, 0, c.width, c.height, "F")
	c.y = pageMargin
}

// ensure guarantees at least height mm of vertical room above the bottom
// margin, breaking to a new page first when there is not.
func (c *reportCanvas) ensure(height float64) {
	if c.y+height > c.height-pageMargin {
		c.startPage()
	}
}

func (c *reportCanvas) advance(height float64) {
	c.y += height
}

// sectionTitle draws the coral 18pt heading with its underline.
func (c *reportCanvas) sectionTitle(title string) {
	c.pdf.SetFont("Helvetica", "B", 18)
	c.pdf.SetTextColor(255, 127, 80)
	c.pdf.Text(pageMargin, c.y, title)

	c.pdf.SetDrawColor(255, 127, 80)
	c.pdf.SetLineWidth(0.5)
	c.pdf.Line(pageMargin, c.y+2, pageMargin+c.pdf.GetStringWidth(title), c.y+2)
	c.advance(12)
}

// section lays out a titled block of wrapped text lines. Blank entries render
// as vertical spacing. Long lines wrap and may continue onto the next page
// without repeating the heading.
func (c *reportCanvas) section(title string, lines []string) {
	c.ensure(60)
	c.sectionTitle(title)

	c.pdf.SetFont("Helvetica", "", 11)
	c.pdf.SetTextColor(255, 255, 255)

	for _, line := range lines {
		if line == "" {
			c.advance(lineHeight)
			continue
		}
		for _, wrapped := range c.pdf.SplitText(line, c.contentWidth()) {
			c.ensure(10)
			// SplitText changes neither font nor color, but a page break repaints
			// the background, so restore text state after a possible break.
			c.pdf.SetFont("Helvetica", "", 11)
			c.pdf.SetTextColor(255, 255, 255)
			c.pdf.Text(pageMargin, c.y, wrapped)
			c.advance(lineHeight)
		}
		c.advance(2)
	}
	c.advance(10)
}

// imageGrid draws up to MaxReportImages assets in a 2-column grid. Nil slots
// get the gray "Image Preview" placeholder box.
func (c *reportCanvas) imageGrid(title string, assets []*ImageAsset) {
	c.ensure(150)
	c.sectionTitle(title)
	c.advance(3)

	cellWidth := (c.contentWidth() - imageCellGap) / 2
	rowY := c.y
	maxRowY := rowY

	for i, asset := range assets {
		col := i % 2
		x := pageMargin + float64(col)*(cellWidth+imageCellGap)

		if rowY+imageCellHeight+40 > c.height-pageMargin {
			c.startPage()
			rowY = c.y + 20
			maxRowY = rowY
		}

		if !c.drawImage(asset, i, x, rowY, cellWidth) {
			c.drawImagePlaceholder(x, rowY, cellWidth)
		}

		c.pdf.SetFont("Helvetica", "B", 10)
		c.pdf.SetTextColor(255, 255, 255)
		c.pdf.Text(x+cellWidth/2-10, rowY+imageCellHeight+10, fmt.Sprintf("Style %d", i+1))

		if bottom := rowY + imageCellHeight + 25; bottom > maxRowY {
			maxRowY = bottom
		}
		if col == 1 {
			rowY = maxRowY
		}
	}
	c.y = maxRowY
}

// registerImage validates and registers an asset with the document under name.
// fpdf only understands JPEG, PNG and GIF; anything else, and anything that
// fails to decode, is rejected here so a bad image cannot poison the document.
func (c *reportCanvas) registerImage(asset *ImageAsset, name string) (aspect float64, opts fpdf.ImageOptions, ok bool) {
	if asset == nil || len(asset.Bytes) == 0 {
		return 0, opts, false
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(asset.Bytes))
	if err != nil || cfg.Width == 0 || cfg.Height == 0 {
		return 0, opts, false
	}
	switch format {
	case "jpeg":
		opts.ImageType = "JPG"
	case "png":
		opts.ImageType = "PNG"
	case "gif":
		opts.ImageType = "GIF"
	default:
		return 0, opts, false
	}

	c.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(asset.Bytes))
	if c.pdf.Err() {
		return 0, opts, false
	}
	return float64(cfg.Width) / float64(cfg.Height), opts, true
}

// drawImage embeds one asset aspect-fit inside the cell box. Returns false
// when the asset is missing or not decodable, leaving the cell untouched.
func (c *reportCanvas) drawImage(asset *ImageAsset, index int, x, y, cellWidth float64) bool {
	name := ""
	if asset != nil {
		name = asset.ContentID(index)
	}
	aspect, opts, ok := c.registerImage(asset, name)
	if !ok {
		return false
	}

	// Fit within the cell while preserving aspect ratio, centered both ways.
	drawWidth := cellWidth
	drawHeight := cellWidth / aspect
	if drawHeight > imageCellHeight {
		drawHeight = imageCellHeight
		drawWidth = imageCellHeight * aspect
	}
	offsetX := (cellWidth - drawWidth) / 2
	offsetY := (imageCellHeight - drawHeight) / 2

	c.pdf.ImageOptions(name, x+offsetX, y+offsetY, drawWidth, drawHeight, false, opts, 0, "")
	return !c.pdf.Err()
}

func (c *reportCanvas) drawImagePlaceholder(x, y, cellWidth float64) {
	c.pdf.SetFillColor(50, 50, 50)
	c.pdf.Rect(x, y, cellWidth, imageCellHeight, "F")
	c.pdf.SetFont("Helvetica", "", 9)
	c.pdf.SetTextColor(255, 127, 80)
	c.pdf.Text(x+cellWidth/2-15, y+imageCellHeight/2, "Image Preview")
}

// stampFooters writes the separator and "Page i of N" footer on every page,
// once the final page count is known.
func (c *reportCanvas) stampFooters() {
	total := c.pdf.PageCount()
	for i := 1; i <= total; i++ {
		c.pdf.SetPage(i)
		footerY := c.height - footerHeight

		c.pdf.SetDrawColor(255, 127, 80)
		c.pdf.SetLineWidth(0.2)
		c.pdf.Line(pageMargin, footerY-5, c.width-pageMargin, footerY-5)

		c.pdf.SetFont("Helvetica", "", 8)
		c.pdf.SetTextColor(150, 150, 150)
		c.pdf.Text(pageMargin, footerY, "MKH Professional Hair Care - Confidential Client Report")
		c.pdf.Text(c.width-pageMargin-20, footerY, fmt.Sprintf("Page %d of %d", i, total))
	}
}

// ReportFileName builds the download name for a generated report.
func ReportFileName(firstName, lastName string, t time.Time) string {
	return fmt.Sprintf("MKH_Hair_Analysis_%s_%s_%s.pdf", firstName, lastName, t.Format("20060102"))
}

func referenceNumber(t time.Time) string {
	ms := strconv.FormatInt(t.UnixMilli(), 10)
	return "MKH-" + ms[len(ms)-6:]
}

// RenderPDF lays the consultation report out onto paginated A4 pages and
// returns the serialized document. generatedAt drives both the displayed
// timestamps and the PDF metadata, so identical input renders identical bytes.
func RenderPDF(form models.FormData, rec *Recommendation, images []*ImageAsset, dates []time.Time, logo *ImageAsset, generatedAt time.Time) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("report rendering failed: %v", r)
		}
	}()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(generatedAt)
	pdf.SetModificationDate(generatedAt)
	pdf.SetAutoPageBreak(false, 0)

	c := newReportCanvas(pdf)
	c.drawHeader(logo)

	c.section("Client Summary", []string{
		fmt.Sprintf("Name: %s %s", form.FirstName, form.LastName),
		fmt.Sprintf("Analysis Date: %s", generatedAt.Format("January 2, 2006")),
		fmt.Sprintf("Reference: %s", referenceNumber(generatedAt)),
		fmt.Sprintf("Report generated on: %s", generatedAt.Format("Monday, January 2, 2006 at 3:04 PM")),
	})

	c.section("Personal Information", []string{
		fmt.Sprintf("Full Name: %s %s", form.FirstName, form.LastName),
		fmt.Sprintf("Email: %s", form.Email),
		fmt.Sprintf("Phone: %s", orNotProvided(form.Phone)),
	})

	c.section("Hair Analysis Profile", []string{
		fmt.Sprintf("Natural Hair Color: %s", orNotSpecified(form.NaturalHairColor)),
		fmt.Sprintf("Skin Tone: %s", orNotSpecified(form.SkinColor)),
		fmt.Sprintf("Eye Color: %s", orNotSpecified(form.EyeColor)),
		fmt.Sprintf("Hair Texture: %s", orNotSpecified(form.HairTexture)),
		fmt.Sprintf("Hair Length: %s", orNotSpecified(form.HairLength)),
		fmt.Sprintf("Personal Style: %s", orNotSpecified(form.PersonalStyle)),
		fmt.Sprintf("Maintenance Preference: %s", orNotSpecified(form.HairMaintenance)),
	})

	if rec != nil {
		lines := []string{
			fmt.Sprintf("Recommended Style: %s", rec.Title),
			"",
			"Recommended Treatments:",
			rec.Description,
			"",
			"Hair Care Routine:",
			rec.HairCare,
			"",
			"Maintenance Schedule:",
		}
		for _, entry := range rec.MaintenanceSchedule {
			lines = append(lines, "- "+entry)
		}
		c.section("Professional Recommendations", lines)
	}

	if len(images) > 0 {
		c.imageGrid("Recommended Style Visuals", images)
	}

	if len(dates) > 0 {
		lines := []string{"Your scheduled appointment dates:", ""}
		for i, d := range dates {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, utils.FormatLongDate(d)))
		}
		lines = append(lines, "", fmt.Sprintf("Total appointments scheduled: %d", len(dates)))
		c.section("Scheduled Perfect Hair Days", lines)
	}

	c.section("Disclaimer", []string{reportDisclaimer})

	c.stampFooters()

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("report rendering failed: %w", err)
	}
	return buf.Bytes(), nil
}

// drawHeader paints the logo block, the two title lines and the separator on
// the first page, then positions the cursor below them.
func (c *reportCanvas) drawHeader(logo *ImageAsset) {
	if _, opts, ok := c.registerImage(logo, "report_logo"); ok {
		c.pdf.ImageOptions("report_logo", pageMargin, 15, 40, 40, false, opts, 0, "")
	}

	c.pdf.SetFont("Helvetica", "B", 26)
	c.pdf.SetTextColor(255, 127, 80)
	c.pdf.Text(pageMargin+45, 35, "MKH Hair Color Analysis")

	c.pdf.SetFont("Helvetica", "B", 16)
	c.pdf.SetTextColor(255, 255, 255)
	c.pdf.Text(pageMargin+45, 45, "Professional Consultation Report")

	c.pdf.SetDrawColor(255, 127, 80)
	c.pdf.SetLineWidth(0.5)
	c.pdf.Line(pageMargin, 55, c.width-pageMargin, 55)

	c.y = 70
}

func orNotProvided(v string) string {
	if v == "" {
		return "Not provided"
	}
	return v
}

func orNotSpecified(v string) string {
	if v == "" {
		return "Not specified"
	}
	return v
}
