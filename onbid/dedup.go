package onbid

import "github.com/google/uuid"

// Deduplicate схлопывает записи с одинаковым номером управления объектом
// (CLTR_MNMT_NO) в одну. Провайдер при повторных опросах может выдавать в одной
// странице несколько устаревших снимков одного объекта; самая поздняя дата
// окончания приема заявок — лучший доступный признак актуальности.
//
// Запись без ключа всегда сохраняется: ей назначается одноразовый синтетический
// ключ, который не может совпасть ни с каким другим.
//
// Состояние дедупликации принадлежит одному вызову функции, поэтому параллельные
// запросы не требуют никакой координации. Порядок записей на выходе не
// гарантируется — гарантируется только отсутствие повторов ключа.
func Deduplicate(tenders []Tender) []Tender {
	unique := make(map[string]Tender, len(tenders))

	for _, current := range tenders {
		key := ""
		if current.ManagementNo != nil {
			key = *current.ManagementNo
		}

		if key == "" {
			unique[uuid.NewString()] = current
			continue
		}

		existing, ok := unique[key]
		if !ok || supersedes(current, existing) {
			unique[key] = current
		}
	}

	result := make([]Tender, 0, len(unique))
	for _, t := range unique {
		result = append(result, t)
	}
	return result
}

// supersedes сообщает, должна ли входящая запись вытеснить уже сохраненную.
// Входящая побеждает, когда ее дата окончания задана и строго позже сохраненной
// либо когда у сохраненной даты нет вовсе.
func supersedes(incoming, existing Tender) bool {
	if incoming.DeadlineAt == nil {
		return false
	}
	if existing.DeadlineAt == nil {
		return true
	}
	return incoming.DeadlineAt.After(*existing.DeadlineAt)
}
