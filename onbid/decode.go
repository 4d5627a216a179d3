package onbid

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// totalCountTag тег верхнего уровня с общим количеством записей по запросу
const totalCountTag = "TotalCount"

// DecodeFeed разбирает XML-ответ провайдера в последовательность RawItem
// и общее количество записей.
//
// Разбор терпимый: элементы <item> ищутся на любой глубине, отсутствующие или
// пустые теги внутри item просто не попадают в RawItem. TotalCount по умолчанию 0,
// если тег отсутствует, пуст или не является числом.
//
// Контракт fail-soft: документ, который не разбирается как корректный XML, дает
// пустой результат (nil, 0), а не ошибку — сбой провайдера деградирует до пустой
// страницы вместо падения всего запроса. Настоящий пустой ответ от такого сбоя
// отличим только по логам вызывающей стороны.
func DecodeFeed(xmlText string) ([]RawItem, int) {
	dec := xml.NewDecoder(strings.NewReader(xmlText))
	dec.CharsetReader = charset.NewReaderLabel

	known := make(map[string]struct{}, len(itemTags))
	for _, tag := range itemTags {
		known[tag] = struct{}{}
	}

	var items []RawItem
	totalCount := 0
	sawTotalCount := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			// документ не является корректным XML целиком — отбрасываем
			// в том числе уже разобранные item
			return nil, 0
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch start.Name.Local {
		case "item":
			item, err := decodeItem(dec, known)
			if err != nil {
				return nil, 0
			}
			items = append(items, item)
		case totalCountTag:
			if sawTotalCount {
				continue
			}
			text, err := collectText(dec)
			if err != nil {
				return nil, 0
			}
			sawTotalCount = true
			if n, convErr := strconv.Atoi(strings.TrimSpace(text)); convErr == nil {
				totalCount = n
			}
		}
	}

	return items, totalCount
}

// decodeItem читает поддерево одного <item>, собирая текст известных дочерних тегов.
// Неизвестные теги пропускаются, пустые не создают записей в RawItem.
func decodeItem(dec *xml.Decoder, known map[string]struct{}) (RawItem, error) {
	item := RawItem{}
	depth := 1
	var current string
	var text strings.Builder

	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if depth == 2 {
				current = t.Name.Local
				text.Reset()
			}
		case xml.EndElement:
			depth--
			if depth == 1 && current != "" {
				if _, ok := known[current]; ok && text.Len() > 0 {
					item[current] = text.String()
				}
				current = ""
			}
		case xml.CharData:
			if depth == 2 {
				text.Write(t)
			}
		}
	}

	return item, nil
}

// collectText читает текстовое содержимое элемента до его закрывающего тега
func collectText(dec *xml.Decoder) (string, error) {
	var sb strings.Builder
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 1 {
				sb.Write(t)
			}
		}
	}
	return sb.String(), nil
}
