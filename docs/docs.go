// Package docs is generated by swag from the handler annotations. Regenerate with `swag init -g cmd/main.go`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/exam/submit": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Records and grades the caller's single attempt. Essay answers stay pending manual review.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Exam"],
                "summary": "Submit answers for a quiz",
                "parameters": [{"description": "Quiz id and answers", "name": "submission", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ExamSubmissionDTO"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuizResultDTO"}},
                    "400": {"description": "Invalid body, repeated question, or unknown quiz, question or answer", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "409": {"description": "Quiz already submitted", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "503": {"description": "Temporary storage problem, retry", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/exam/check-submission/{quiz_id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Exam"],
                "summary": "Check whether the caller already submitted a quiz",
                "parameters": [{"type": "integer", "description": "Quiz ID", "name": "quiz_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SubmissionStatusDTO"}}}
            }
        },
        "/exam/result/{quiz_id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Exam"],
                "summary": "Get the graded result of the caller's attempt",
                "parameters": [{"type": "integer", "description": "Quiz ID", "name": "quiz_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuizResultDTO"}},
                    "404": {"description": "No attempt for this quiz", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/quizzes/{quiz_id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Quizzes"],
                "summary": "Get a published quiz",
                "parameters": [{"type": "integer", "description": "Quiz ID", "name": "quiz_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuizViewDTO"}},
                    "404": {"description": "Quiz not found or not published", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/module-progress/{kind}/{module_id}": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Module Progress"],
                "summary": "Mark module content, video or test as (not) completed",
                "parameters": [
                    {"enum": ["content", "video", "test"], "type": "string", "name": "kind", "in": "path", "required": true},
                    {"type": "integer", "description": "Module ID", "name": "module_id", "in": "path", "required": true},
                    {"description": "Completion flag", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ProgressUpdateDTO"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}}}
            }
        },
        "/module-progress/test-unlock/{module_id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Module Progress"],
                "summary": "Whether the module test is unlocked for the caller",
                "parameters": [{"type": "integer", "description": "Module ID", "name": "module_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TestUnlockDTO"}}}
            }
        },
        "/module-progress/completed/{module_id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Module Progress"],
                "summary": "Whether the caller completed the module",
                "parameters": [{"type": "integer", "description": "Module ID", "name": "module_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ModuleCompletionDTO"}}}
            }
        },
        "/module-progress/course/{course_id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Module Progress"],
                "summary": "List the caller's progress for every module of a course",
                "parameters": [{"type": "integer", "description": "Course ID", "name": "course_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.ModuleProgressDTO"}}}}
            }
        },
        "/admin/quizzes": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Admin - Quizzes"],
                "summary": "(Admin) Create a quiz with its questions and answers",
                "parameters": [{"description": "Quiz definition", "name": "quiz_data", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.QuizCreateDTO"}}],
                "responses": {
                    "201": {"description": "Quiz created successfully", "schema": {"$ref": "#/definitions/dto.QuizDetailDTO"}},
                    "400": {"description": "Invalid quiz definition", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/admin/quizzes/{quiz_id}/publish": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Admin - Quizzes"],
                "summary": "(Admin) Publish or unpublish a quiz",
                "parameters": [
                    {"type": "integer", "description": "Quiz ID", "name": "quiz_id", "in": "path", "required": true},
                    {"description": "Visibility flag", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.PublishQuizDTO"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}}}
            }
        },
        "/instructor/submitted-answers/{answer_id}/ai-review": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Instructor - Essay Review"],
                "summary": "(Instructor) AI feedback suggestion for an essay answer",
                "parameters": [{"type": "integer", "description": "Submitted answer ID", "name": "answer_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.EssayReviewDTO"}},
                    "503": {"description": "Review assistant unavailable", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.ErrorResponse": {"type": "object", "properties": {"message": {"type": "string"}, "details": {"type": "array", "items": {"type": "string"}}}},
        "dto.MessageResponse": {"type": "object", "properties": {"success": {"type": "boolean"}, "message": {"type": "string"}}},
        "dto.AnswerSubmissionDTO": {"type": "object", "required": ["question_id"], "properties": {
            "question_id": {"type": "integer"}, "answer_id": {"type": "integer"}, "selected_index": {"type": "integer"},
            "answer_text": {"type": "string"}, "link_answer": {"type": "string"}, "file_name": {"type": "string"}, "file_path": {"type": "string"}}},
        "dto.ExamSubmissionDTO": {"type": "object", "required": ["quiz_id", "answers"], "properties": {
            "quiz_id": {"type": "integer"}, "answers": {"type": "array", "items": {"$ref": "#/definitions/dto.AnswerSubmissionDTO"}}}},
        "dto.QuestionResultDTO": {"type": "object", "properties": {
            "question_id": {"type": "integer"}, "question_content": {"type": "string"}, "question_type": {"type": "string"},
            "points": {"type": "number"}, "earned_points": {"type": "number"}, "selected_answer_id": {"type": "integer"},
            "submitted_value": {"type": "string"}, "link_answer": {"type": "string"}, "file_name": {"type": "string"},
            "is_correct": {"type": "boolean"}, "pending_review": {"type": "boolean"}}},
        "dto.QuizResultDTO": {"type": "object", "properties": {
            "attempt_id": {"type": "integer"}, "quiz_id": {"type": "integer"}, "quiz_title": {"type": "string"}, "user_id": {"type": "integer"},
            "attempted_at": {"type": "string"}, "earned_points": {"type": "number"}, "total_points": {"type": "number"},
            "percentage": {"type": "number"}, "passed": {"type": "boolean"}, "pending_manual_review": {"type": "integer"},
            "questions": {"type": "array", "items": {"$ref": "#/definitions/dto.QuestionResultDTO"}}}},
        "dto.SubmissionStatusDTO": {"type": "object", "properties": {"quiz_id": {"type": "integer"}, "has_submitted": {"type": "boolean"}, "attempt_count": {"type": "integer"}}},
        "dto.ProgressUpdateDTO": {"type": "object", "required": ["completed"], "properties": {"completed": {"type": "boolean"}}},
        "dto.PublishQuizDTO": {"type": "object", "required": ["published"], "properties": {"published": {"type": "boolean"}}},
        "dto.TestUnlockDTO": {"type": "object", "properties": {"unlocked": {"type": "boolean"}}},
        "dto.ModuleCompletionDTO": {"type": "object", "properties": {"module_id": {"type": "integer"}, "completed": {"type": "boolean"}}},
        "dto.ModuleProgressDTO": {"type": "object", "properties": {
            "id": {"type": "integer"}, "user_id": {"type": "integer"}, "module_id": {"type": "integer"},
            "content_completed": {"type": "boolean"}, "video_completed": {"type": "boolean"}, "test_completed": {"type": "boolean"},
            "module_completed": {"type": "boolean"}, "updated_at": {"type": "string"}}},
        "dto.AnswerOptionDTO": {"type": "object", "properties": {"id": {"type": "integer"}, "answer_text": {"type": "string"}, "order_number": {"type": "integer"}}},
        "dto.QuestionViewDTO": {"type": "object", "properties": {
            "id": {"type": "integer"}, "content": {"type": "string"}, "type": {"type": "string"}, "points": {"type": "number"},
            "order_number": {"type": "integer"}, "answers": {"type": "array", "items": {"$ref": "#/definitions/dto.AnswerOptionDTO"}}}},
        "dto.QuizViewDTO": {"type": "object", "properties": {
            "id": {"type": "integer"}, "course_id": {"type": "integer"}, "title": {"type": "string"}, "description": {"type": "string"},
            "passing_percentage": {"type": "number"}, "questions": {"type": "array", "items": {"$ref": "#/definitions/dto.QuestionViewDTO"}}}},
        "dto.AnswerCreateDTO": {"type": "object", "required": ["answer_text", "order_number"], "properties": {
            "answer_text": {"type": "string"}, "order_number": {"type": "integer", "minimum": 1}, "is_correct": {"type": "boolean"}}},
        "dto.QuestionCreateDTO": {"type": "object", "required": ["content", "type", "points", "order_number"], "properties": {
            "content": {"type": "string"}, "type": {"type": "string", "enum": ["MULTIPLE_CHOICE", "ESSAY"]}, "points": {"type": "number"},
            "order_number": {"type": "integer", "minimum": 1}, "answers": {"type": "array", "items": {"$ref": "#/definitions/dto.AnswerCreateDTO"}}}},
        "dto.QuizCreateDTO": {"type": "object", "required": ["course_id", "title", "questions"], "properties": {
            "course_id": {"type": "integer"}, "title": {"type": "string"}, "description": {"type": "string"}, "published": {"type": "boolean"},
            "passing_percentage": {"type": "number"}, "questions": {"type": "array", "items": {"$ref": "#/definitions/dto.QuestionCreateDTO"}}}},
        "dto.AnswerDetailDTO": {"type": "object", "properties": {
            "id": {"type": "integer"}, "answer_text": {"type": "string"}, "order_number": {"type": "integer"}, "is_correct": {"type": "boolean"}}},
        "dto.QuestionDetailDTO": {"type": "object", "properties": {
            "id": {"type": "integer"}, "content": {"type": "string"}, "type": {"type": "string"}, "points": {"type": "number"},
            "order_number": {"type": "integer"}, "answers": {"type": "array", "items": {"$ref": "#/definitions/dto.AnswerDetailDTO"}}}},
        "dto.QuizDetailDTO": {"type": "object", "properties": {
            "id": {"type": "integer"}, "course_id": {"type": "integer"}, "title": {"type": "string"}, "description": {"type": "string"},
            "published": {"type": "boolean"}, "passing_percentage": {"type": "number"}, "created_at": {"type": "string"},
            "questions": {"type": "array", "items": {"$ref": "#/definitions/dto.QuestionDetailDTO"}}}},
        "dto.EssayReviewDTO": {"type": "object", "properties": {
            "submitted_answer_id": {"type": "integer"}, "question_id": {"type": "integer"}, "max_points": {"type": "number"},
            "suggested_points": {"type": "number"}, "feedback": {"type": "string"}}}
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Coursegate Exam & Progress API",
	Description:      "Quiz submission with automatic grading, single-attempt enforcement and module progress tracking.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
