package review

// BaseIntervals is the expanding review schedule in days. Stage 0 is the
// first review after a card is introduced.
var BaseIntervals = []int{1, 3, 7, 14, 30, 60}

// GraduationStage is the number of consecutive successful reviews after
// which a card graduates.
const GraduationStage = 6

// GraduatedIntervalDays is the review interval for graduated cards.
const GraduatedIntervalDays = 90
