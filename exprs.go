// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Alex Galitsky
// Source: github.com/AlexGalitsky/swagmodels

package swagmodels

import (
	"strconv"
	"strings"
)

// fieldFromJSONExpr builds the decode initializer for one record field.
func fieldFromJSONExpr(field FieldDescriptor, src string) string {
	if field.Required {
		return dartFromJSONExpr(field.Type, src, 0)
	}

	return dartFromJSONExprNullable(field.Type, src, 0)
}

// fieldToJSONExpr builds the encode expression for one record field.
func fieldToJSONExpr(field FieldDescriptor, src string) string {
	if field.Required {
		return dartToJSONExpr(field.Type, src, 0)
	}

	return dartToJSONExprNullable(field.Type, src, 0)
}

// dartFromJSONExpr builds the expression decoding src into a required value.
func dartFromJSONExpr(valueType ResolvedType, src string, depth int) string {
	switch valueType.Kind {
	case TypeText:
		return src + " as String"
	case TypeInt:
		return "(" + src + " as num).toInt()"
	case TypeDouble:
		return "(" + src + " as num).toDouble()"
	case TypeBool:
		return src + " as bool"
	case TypeDateTime:
		return "DateTime.parse(" + src + " as String)"
	case TypeClass:
		return valueType.Name + ".fromJson(" + src + " as Map<String, dynamic>)"
	case TypeEnum:
		return valueType.Name + ".fromJson(" + src + " as " + enumRawDart(valueType) + ")"
	case TypeList:
		elem := elemOrDynamic(valueType)
		item := jsonVarName("item", depth)
		inner := dartFromJSONExpr(elem, item, depth+1)
		if inner == item {
			return src + " as List<dynamic>"
		}

		return "(" + src + " as List<dynamic>).map((" + item + ") => " + inner + ").toList()"
	case TypeMap:
		elem := elemOrDynamic(valueType)
		key := jsonVarName("key", depth)
		value := jsonVarName("value", depth)
		inner := dartFromJSONExpr(elem, value, depth+1)
		if inner == value {
			return src + " as Map<String, dynamic>"
		}

		return "(" + src + " as Map<String, dynamic>).map((" + key + ", " + value + ") => MapEntry(" + key + ", " + inner + "))"
	default:
		return src
	}
}

// dartFromJSONExprNullable builds the expression decoding src into an optional value.
func dartFromJSONExprNullable(valueType ResolvedType, src string, depth int) string {
	switch valueType.Kind {
	case TypeText:
		return src + " as String?"
	case TypeInt:
		return "(" + src + " as num?)?.toInt()"
	case TypeDouble:
		return "(" + src + " as num?)?.toDouble()"
	case TypeBool:
		return src + " as bool?"
	case TypeDateTime:
		return src + " == null ? null : DateTime.parse(" + src + " as String)"
	case TypeClass:
		return src + " == null ? null : " + valueType.Name + ".fromJson(" + src + " as Map<String, dynamic>)"
	case TypeEnum:
		return src + " == null ? null : " + valueType.Name + ".fromJson(" + src + " as " + enumRawDart(valueType) + ")"
	case TypeList:
		elem := elemOrDynamic(valueType)
		item := jsonVarName("item", depth)
		inner := dartFromJSONExpr(elem, item, depth+1)
		if inner == item {
			return src + " as List<dynamic>?"
		}

		return "(" + src + " as List<dynamic>?)?.map((" + item + ") => " + inner + ").toList()"
	case TypeMap:
		elem := elemOrDynamic(valueType)
		key := jsonVarName("key", depth)
		value := jsonVarName("value", depth)
		inner := dartFromJSONExpr(elem, value, depth+1)
		if inner == value {
			return src + " as Map<String, dynamic>?"
		}

		return "(" + src + " as Map<String, dynamic>?)?.map((" + key + ", " + value + ") => MapEntry(" + key + ", " + inner + "))"
	default:
		return src
	}
}

// dartToJSONExpr builds the expression encoding a required value for JSON.
func dartToJSONExpr(valueType ResolvedType, src string, depth int) string {
	switch valueType.Kind {
	case TypeDateTime:
		return src + ".toIso8601String()"
	case TypeClass, TypeEnum:
		return src + ".toJson()"
	case TypeList:
		elem := elemOrDynamic(valueType)
		item := jsonVarName("item", depth)
		inner := dartToJSONExpr(elem, item, depth+1)
		if inner == item {
			return src
		}

		return src + ".map((" + item + ") => " + inner + ").toList()"
	case TypeMap:
		elem := elemOrDynamic(valueType)
		key := jsonVarName("key", depth)
		value := jsonVarName("value", depth)
		inner := dartToJSONExpr(elem, value, depth+1)
		if inner == value {
			return src
		}

		return src + ".map((" + key + ", " + value + ") => MapEntry(" + key + ", " + inner + "))"
	default:
		return src
	}
}

// dartToJSONExprNullable builds the expression encoding an optional value for JSON.
func dartToJSONExprNullable(valueType ResolvedType, src string, depth int) string {
	expr := dartToJSONExpr(valueType, src, depth)
	if expr == src {
		return src
	}

	if strings.HasPrefix(expr, src+".") {
		return src + "?" + strings.TrimPrefix(expr, src)
	}

	return src + " == null ? null : " + expr
}

// enumRawDart names the raw wire scalar backing an enumeration reference.
func enumRawDart(valueType ResolvedType) string {
	if valueType.Elem != nil && valueType.Elem.Kind == TypeInt {
		return "int"
	}

	return "String"
}

// elemOrDynamic returns the element type of a container, defaulting to dynamic.
func elemOrDynamic(valueType ResolvedType) ResolvedType {
	if valueType.Elem == nil {
		return dynamicType()
	}

	return *valueType.Elem
}

// jsonVarName yields closure parameter names unique per nesting depth.
func jsonVarName(base string, depth int) string {
	if depth == 0 {
		return base
	}

	return base + strconv.Itoa(depth)
}
