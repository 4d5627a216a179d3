// Генератор тестовых фидов Onbid.
//
// Создает XML-ответы провайдера для локальной разработки и ручного тестирования:
// обычный UTF-8 фид, фид в кодировке EUC-KR и фид с дубликатами по номеру
// управления объектом.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"

	"bidserver/onbid"
)

// koreanTitles наименования объектов для проверки декодирования EUC-KR
var koreanTitles = []string{
	"서울시 강남구 오피스텔",
	"부산 해운대 상가 건물",
	"대전 유성구 토지 매각",
	"인천 연수구 아파트",
	"경기도 수원시 공장 부지",
}

var organizations = []string{
	"한국자산관리공사",
	"서울특별시",
	"국세청",
	"캠코 부산지역본부",
}

func main() {
	count := flag.Int("count", 50, "количество элементов item в фиде")
	duplicates := flag.Int("duplicates", 5, "количество дубликатов по номеру управления")
	euckr := flag.Bool("euckr", false, "кодировать фид в EUC-KR вместо UTF-8")
	seed := flag.Int64("seed", 0, "seed генератора, 0 = невоспроизводимый")
	outDir := flag.String("out", "testdata", "директория для файлов фида")
	flag.Parse()

	gofakeit.Seed(*seed)

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("Ошибка создания директории %s: %v", *outDir, err)
	}

	feed := buildFeed(*count, *duplicates)

	name := "onbid_feed_utf8.xml"
	if *euckr {
		name = "onbid_feed_euckr.xml"
	}
	path := filepath.Join(*outDir, name)

	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("Ошибка создания файла %s: %v", path, err)
	}
	defer f.Close()

	var w io.Writer = f
	if *euckr {
		fmt.Fprintln(f, `<?xml version="1.0" encoding="EUC-KR"?>`)
		enc := transform.NewWriter(f, korean.EUCKR.NewEncoder())
		defer enc.Close()
		w = enc
	} else {
		fmt.Fprintln(f, `<?xml version="1.0" encoding="UTF-8"?>`)
	}

	if _, err := io.WriteString(w, feed); err != nil {
		log.Fatalf("Ошибка записи фида: %v", err)
	}

	log.Printf("Фид записан: %s (%d элементов, %d дубликатов)", path, *count, *duplicates)
}

// buildFeed собирает тело ответа провайдера без XML-декларации
func buildFeed(count, duplicates int) string {
	var b strings.Builder

	b.WriteString("<response>\n")
	b.WriteString("  <header><resultCode>00</resultCode><resultMsg>NORMAL SERVICE.</resultMsg></header>\n")
	b.WriteString("  <body>\n")
	b.WriteString("    <items>\n")

	managementNos := make([]string, 0, count)
	for i := 0; i < count; i++ {
		mgmtNo := fmt.Sprintf("%d-%05d-%03d", 2000+gofakeit.Number(20, 26), gofakeit.Number(1, 99999), gofakeit.Number(1, 999))
		managementNos = append(managementNos, mgmtNo)
		b.WriteString(renderItem(mgmtNo, i))
	}

	// Дубликаты существующих ключей с другой датой окончания: при разборе
	// должен выжить вариант с более поздним дедлайном
	for i := 0; i < duplicates && i < len(managementNos); i++ {
		b.WriteString(renderItem(managementNos[gofakeit.Number(0, len(managementNos)-1)], count+i))
	}

	b.WriteString("    </items>\n")
	fmt.Fprintf(&b, "    <totalCount>%d</totalCount>\n", count*10)
	fmt.Fprintf(&b, "    <pageNo>1</pageNo>\n")
	fmt.Fprintf(&b, "    <numOfRows>%d</numOfRows>\n", count)
	b.WriteString("  </body>\n")
	b.WriteString("</response>\n")

	return b.String()
}

func renderItem(mgmtNo string, n int) string {
	begin := gofakeit.DateRange(
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
	)
	deadline := begin.Add(time.Duration(gofakeit.Number(7, 45)) * 24 * time.Hour)

	var b strings.Builder
	b.WriteString("      <item>\n")
	writeTag(&b, onbid.TagPlnmNo, fmt.Sprintf("%d", 100000+n))
	writeTag(&b, onbid.TagPbctNo, fmt.Sprintf("%d", gofakeit.Number(1, 99)))
	writeTag(&b, onbid.TagCltrHstrNo, fmt.Sprintf("%d", gofakeit.Number(1, 5)))
	// каждый десятый item идет без бизнес-ключа
	if n%10 != 3 {
		writeTag(&b, onbid.TagCltrMnmtNo, mgmtNo)
	}
	writeTag(&b, onbid.TagCltrNm, koreanTitles[gofakeit.Number(0, len(koreanTitles)-1)])
	writeTag(&b, onbid.TagDpslMtdNm, organizations[gofakeit.Number(0, len(organizations)-1)])
	writeTag(&b, onbid.TagBidMnmtNo, fmt.Sprintf("BID-%06d", gofakeit.Number(1, 999999)))
	writeTag(&b, onbid.TagPbctBegnDtm, begin.Format("20060102150405"))
	writeTag(&b, onbid.TagPbctClsDtm, deadline.Format("20060102150405"))
	b.WriteString("      </item>\n")

	return b.String()
}

func writeTag(b *strings.Builder, tag, value string) {
	fmt.Fprintf(b, "        <%s>%s</%s>\n", tag, value, tag)
}
