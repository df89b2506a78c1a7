package service

import (
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

// DefaultTestSize — целевое количество вопросов в собранном тесте
const DefaultTestSize = 30

// poolCacheTTL — время жизни кеша пула вопросов
const poolCacheTTL = 1 * time.Minute

// AssemblerService собирает тест: выбирает ограниченное количество уникальных
// вопросов из пула заданного режима случайной выборкой и группирует их с
// вариантами ответов. Только чтение, безопасен при конкурентных вызовах.
type AssemblerService struct {
	questionRepo repository.QuestionRepository
	cacheRepo    repository.CacheRepository
	targetSize   int
}

// NewAssemblerService создает новый сервис сборки тестов.
// cacheRepo может быть nil — тогда пул читается из базы на каждый вызов.
func NewAssemblerService(
	questionRepo repository.QuestionRepository,
	cacheRepo repository.CacheRepository,
	targetSize int,
) *AssemblerService {
	if targetSize <= 0 {
		targetSize = DefaultTestSize
	}
	return &AssemblerService{
		questionRepo: questionRepo,
		cacheRepo:    cacheRepo,
		targetSize:   targetSize,
	}
}

// AssembleTest собирает тест для заданного режима.
// Пустой пул — не ошибка: возвращается пустой список. Если в пуле меньше
// targetSize уникальных вопросов, возвращаются все.
func (s *AssemblerService) AssembleTest(isTraining bool) ([]entity.AssembledQuestion, error) {
	rows, err := s.eligiblePool(isTraining)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []entity.AssembledQuestion{}, nil
	}

	// Перемешиваем УНИКАЛЬНЫЕ ID вопросов, а не развернутые строки пула:
	// перемешивание строк смещало бы выборку в пользу вопросов
	// с большим числом вариантов.
	ids := distinctQuestionIDs(rows)

	// Источник случайности локален для вызова — общий сид между
	// конкурентными запросами не разделяется.
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	shuffle(ids, rng)

	take := s.targetSize
	if take > len(ids) {
		take = len(ids)
	}
	selected := make(map[uint]bool, take)
	for _, id := range ids[:take] {
		selected[id] = true
	}

	return groupPoolRows(rows, selected), nil
}

// eligiblePool читает развернутый пул сквозь кеш
func (s *AssemblerService) eligiblePool(isTraining bool) ([]entity.QuestionPoolRow, error) {
	key := poolCacheKey(isTraining)

	if s.cacheRepo != nil {
		var cached []entity.QuestionPoolRow
		if err := s.cacheRepo.GetJSON(key, &cached); err == nil {
			return cached, nil
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			// Проблемы с кешем не валят запрос — идем в базу
			log.Printf("[AssemblerService] Ошибка чтения кеша пула %s: %v", key, err)
		}
	}

	rows, err := s.questionRepo.FetchEligiblePool(isTraining)
	if err != nil {
		return nil, err
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetJSON(key, rows, poolCacheTTL); err != nil {
			log.Printf("[AssemblerService] Ошибка записи кеша пула %s: %v", key, err)
		}
	}
	return rows, nil
}

// InvalidatePoolCache сбрасывает кеш обоих пулов после изменения банка вопросов
func (s *AssemblerService) InvalidatePoolCache() {
	if s.cacheRepo == nil {
		return
	}
	for _, key := range []string{poolCacheKey(true), poolCacheKey(false)} {
		if err := s.cacheRepo.Delete(key); err != nil {
			log.Printf("[AssemblerService] Ошибка инвалидации кеша %s: %v", key, err)
		}
	}
}

func poolCacheKey(isTraining bool) string {
	if isTraining {
		return "pool:training"
	}
	return "pool:exam"
}

// distinctQuestionIDs возвращает уникальные ID вопросов в порядке появления
func distinctQuestionIDs(rows []entity.QuestionPoolRow) []uint {
	seen := make(map[uint]bool, len(rows))
	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		if !seen[row.QuestionID] {
			seen[row.QuestionID] = true
			ids = append(ids, row.QuestionID)
		}
	}
	return ids
}

// shuffle выполняет перестановку Фишера–Йетса на месте
func shuffle(ids []uint, rng *rand.Rand) {
	for i := len(ids) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		ids[i], ids[j] = ids[j], ids[i]
	}
}

// groupPoolRows сворачивает отобранные строки пула обратно в структуру
// вопрос → варианты. Порядок вариантов внутри вопроса сохраняется.
func groupPoolRows(rows []entity.QuestionPoolRow, selected map[uint]bool) []entity.AssembledQuestion {
	index := make(map[uint]int, len(selected))
	questions := make([]entity.AssembledQuestion, 0, len(selected))

	for _, row := range rows {
		if !selected[row.QuestionID] {
			continue
		}
		i, ok := index[row.QuestionID]
		if !ok {
			questions = append(questions, entity.AssembledQuestion{
				QuestionID:   row.QuestionID,
				QuestionText: row.QuestionText,
				CategoryID:   row.CategoryID,
				CategoryName: row.CategoryName,
				IsTraining:   row.IsTraining,
				Options:      []entity.AssembledOption{},
			})
			i = len(questions) - 1
			index[row.QuestionID] = i
		}
		questions[i].Options = append(questions[i].Options, entity.AssembledOption{
			OptionID:   row.OptionID,
			OptionText: row.OptionText,
		})
	}
	return questions
}
